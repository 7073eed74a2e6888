package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLevels(t *testing.T) {
	testCases := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info", false, false},
		{"debug", true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tc.debug)
			logger.Debug("probe")

			if got := buf.Len() > 0; got != tc.wantDebug {
				t.Errorf("debug record emitted = %v, want %v", got, tc.wantDebug)
			}
		})
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("point_scored", "scorer", "left")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "point_scored" || rec["scorer"] != "left" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestSetupFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "pong.log")
	closer, err := Setup(path, false)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	slog.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !bytes.Contains(data, []byte(`"msg":"hello"`)) {
		t.Errorf("log file missing record: %q", data)
	}
}
