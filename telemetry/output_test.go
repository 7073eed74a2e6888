package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pong/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v, want nil, nil", om, err)
	}

	// All methods are nil-safe
	if err := om.WritePoint(PointRecord{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteMatch(MatchSummary{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" || om.Close() != nil {
		t.Error("nil manager should be inert")
	}
}

func TestOutputManagerWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	for i := 1; i <= 2; i++ {
		if err := om.WritePoint(PointRecord{MatchID: "m", Point: i, Scorer: "left"}); err != nil {
			t.Fatalf("WritePoint: %v", err)
		}
	}
	if err := om.WriteMatch(MatchSummary{MatchID: "m", Winner: "left", LeftScore: 11}); err != nil {
		t.Fatalf("WriteMatch: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	readLines := func(name string) []string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		return strings.Split(strings.TrimSpace(string(data)), "\n")
	}

	points := readLines("points.csv")
	if len(points) != 3 {
		t.Fatalf("points.csv has %d lines, want header + 2", len(points))
	}
	if !strings.HasPrefix(points[0], "match_id,point,sim_time_s,scorer") {
		t.Errorf("points header = %q", points[0])
	}
	if !strings.HasPrefix(points[2], "m,2,") {
		t.Errorf("second row = %q", points[2])
	}

	matches := readLines("matches.csv")
	if len(matches) != 2 || !strings.HasPrefix(matches[1], "m,left,11,") {
		t.Errorf("matches.csv = %v", matches)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
