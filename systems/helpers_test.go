package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
)

func testParams(t *testing.T) Params {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return ParamsFromConfig(cfg)
}

// liveMatch returns a match with the ball at center court, stopped and live.
func liveMatch(t *testing.T, params Params) *components.Match {
	t.Helper()
	m := NewMatch(params, rand.New(rand.NewSource(1)))
	m.Serve = components.ServeLive
	m.RespawnRemaining = 0
	d := m.Ball.Diameter()
	m.Ball.Rect = components.Rect{X: params.Width/2 - d/2, Y: params.Height/2 - d/2, W: d, H: d}
	return m
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
