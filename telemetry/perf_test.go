package telemetry

import (
	"math"
	"testing"
)

func TestFrameStats_RollingWindow(t *testing.T) {
	fs := NewFrameStats(4)

	// Older slow frames fall out of the window
	fs.Record(100)
	fs.Record(100)
	for i := 0; i < 4; i++ {
		fs.Record(16)
	}

	s := fs.Summary()
	if s.Frames != 4 {
		t.Errorf("Frames = %d, want 4", s.Frames)
	}
	if s.MeanMS != 16 || s.StdMS != 0 || s.P95MS != 16 {
		t.Errorf("summary = %+v, want mean/p95 16 and std 0", s)
	}
	if math.Abs(s.FPS-62.5) > 1e-9 {
		t.Errorf("FPS = %v, want 62.5", s.FPS)
	}
}

func TestFrameStats_Empty(t *testing.T) {
	fs := NewFrameStats(0)
	if s := fs.Summary(); s != (FrameSummary{}) {
		t.Errorf("empty summary = %+v", s)
	}

	fs.Record(0)
	if s := fs.Summary(); s.FPS != 0 || s.Frames != 1 {
		t.Errorf("zero-dt summary = %+v", s)
	}
}
