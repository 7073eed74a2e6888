package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/pong/components"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLetterboxIdentity(t *testing.T) {
	cam := New(904, 800, 904, 800, Letterbox)

	if cam.ScaleX != 1 || cam.ScaleY != 1 {
		t.Errorf("expected scale 1, got (%f, %f)", cam.ScaleX, cam.ScaleY)
	}
	if cam.OffsetX != 0 || cam.OffsetY != 0 {
		t.Errorf("expected no offset, got (%f, %f)", cam.OffsetX, cam.OffsetY)
	}
}

func TestLetterboxWideWindow(t *testing.T) {
	// Twice as wide as needed: height limits the scale, bars left and right
	cam := New(1808*2, 1600, 904, 800, Letterbox)

	if !near(cam.ScaleX, 2) || !near(cam.ScaleY, 2) {
		t.Fatalf("expected uniform scale 2, got (%f, %f)", cam.ScaleX, cam.ScaleY)
	}
	if !near(cam.OffsetX, 904) || !near(cam.OffsetY, 0) {
		t.Errorf("expected offset (904, 0), got (%f, %f)", cam.OffsetX, cam.OffsetY)
	}

	b := cam.Bounds()
	if !near(b.X, 904) || !near(b.W, 1808) || !near(b.H, 1600) {
		t.Errorf("unexpected playfield bounds %+v", b)
	}
}

func TestStretchTerminal(t *testing.T) {
	cam := New(80, 24, 904, 800, Stretch)

	sx, sy := cam.WorldToScreen(904, 800)
	if !near(sx, 80) || !near(sy, 24) {
		t.Errorf("far corner should map to (80, 24), got (%f, %f)", sx, sy)
	}

	r := cam.RectToScreen(components.Rect{X: 452, Y: 400, W: 113, H: 100})
	if !near(r.X, 40) || !near(r.Y, 12) || !near(r.W, 10) || !near(r.H, 3) {
		t.Errorf("unexpected rect %+v", r)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 904, 800, Letterbox)

	testCases := []struct{ wx, wy float64 }{
		{0, 0},
		{452, 400},
		{900, 10},
	}

	for _, tc := range testCases {
		sx, sy := cam.WorldToScreen(tc.wx, tc.wy)
		wx, wy := cam.ScreenToWorld(sx, sy)
		if math.Abs(wx-tc.wx) > 1e-6 || math.Abs(wy-tc.wy) > 1e-6 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.wx, tc.wy, sx, sy, wx, wy)
		}
	}
}

func TestResize(t *testing.T) {
	cam := New(904, 800, 904, 800, Letterbox)
	cam.Resize(452, 400)

	if !near(cam.ScaleX, 0.5) {
		t.Errorf("expected scale 0.5 after resize, got %f", cam.ScaleX)
	}
}
