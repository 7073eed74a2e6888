package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/pong/components"
)

// Serving runs in two phases. HideBall takes the ball off the board and
// starts the respawn countdown; PlaceBall puts it back at center court with
// a fresh serve. TickServe drives the countdown between them, and Respawn
// runs whichever phase is due.

// HideBall moves the ball off-board, stops it and starts the respawn delay.
func HideBall(m *components.Match, params Params) {
	b := &m.Ball
	b.Rect.X = params.HiddenX
	b.Rect.Y = params.HiddenY
	b.VelX = 0
	b.VelY = 0
	m.Serve = components.ServeRespawnPending
	m.RespawnRemaining = params.RespawnDelayMS
}

// PlaceBall serves the ball from center court.
// The vertical position is uniform over the playfield, the angle is uniform
// within the serve limit, the horizontal direction points away from the
// serving side and the speed is the base ball speed.
func PlaceBall(m *components.Match, params Params, rng *rand.Rand) {
	b := &m.Ball
	d := b.Diameter()

	angle := (rng.Float64()*2 - 1) * params.MaxServeAngleRad
	b.VelX = math.Cos(angle) * params.BallSpeed * sign(m.LeftServes)
	b.VelY = math.Sin(angle) * params.BallSpeed

	b.Rect.X = params.Width/2 - b.Radius
	b.Rect.Y = rng.Float64() * math.Max(0, params.Height-d)

	m.Serve = components.ServeLive
	m.RespawnRemaining = 0
	m.RallyHits = 0
	m.RallyMS = 0
}

// Respawn runs the next serve phase: from a live ball it hides the ball,
// from a pending respawn it places it.
func Respawn(m *components.Match, params Params, rng *rand.Rand) {
	if m.Serve == components.ServeLive {
		HideBall(m, params)
		return
	}
	PlaceBall(m, params, rng)
}

// TickServe counts down a pending respawn by dt milliseconds and places the
// ball once the delay has elapsed. Reports whether the ball was placed.
func TickServe(m *components.Match, dt float64, params Params, rng *rand.Rand) bool {
	if m.Serve != components.ServeRespawnPending {
		return false
	}
	m.RespawnRemaining -= dt
	if m.RespawnRemaining > 0 {
		return false
	}
	PlaceBall(m, params, rng)
	return true
}
