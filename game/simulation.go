package game

import (
	"time"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/systems"
)

// Update advances the simulation by one frame's dt in milliseconds.
// The integrator decides how many simulation steps that is.
func (g *Game) Update(dt float64) {
	g.integ.Step(dt, g.step)

	start := time.Now()
	g.sparks.Update(dt)
	g.perf.Record(systems.PhaseFX, time.Since(start))

	g.elapsedMS += dt
	g.maybeLogPerf()
}

// step runs one simulation step of dt milliseconds.
func (g *Game) step(dt float64) {
	if g.match.Mode == components.ModeGameOver {
		g.stepDemo(dt)
		return
	}
	g.stepPlaying(dt)
}

// stepPlaying runs the rally: serve countdown, contacts and scoring, the
// game-over check, AI, then integration.
func (g *Game) stepPlaying(dt float64) {
	m := g.match
	p := g.params

	start := time.Now()
	if systems.TickServe(m, dt, p, g.rng) {
		g.onServe()
	}
	g.perf.Record(systems.PhaseServe, time.Since(start))

	start = time.Now()
	if m.Live() {
		contact := systems.Collide(m, p, true, g.sound)
		g.onContact(contact)
	}
	g.perf.Record(systems.PhaseCollision, time.Since(start))

	start = time.Now()
	if systems.CheckGameOver(m, p, g.rng) {
		g.onGameOver()
		g.perf.Record(systems.PhaseRules, time.Since(start))
		return
	}
	g.perf.Record(systems.PhaseRules, time.Since(start))

	start = time.Now()
	systems.DriveAI(&m.Left, &m.Ball, p)
	systems.DriveAI(&m.Right, &m.Ball, p)
	g.perf.Record(systems.PhaseAI, time.Since(start))

	start = time.Now()
	systems.AdvancePaddle(&m.Left, dt, p)
	systems.AdvancePaddle(&m.Right, dt, p)
	if m.Live() {
		systems.AdvanceBall(&m.Ball, dt)
		m.RallyMS += dt
	}
	g.collector.Advance(dt)
	g.perf.Record(systems.PhaseIntegrate, time.Since(start))
}

// stepDemo keeps the ball bouncing off all four edges behind the final
// score. Paddles stay frozen and nothing is scored or heard.
func (g *Game) stepDemo(dt float64) {
	m := g.match

	start := time.Now()
	systems.Collide(m, g.params, false, g.sound)
	g.perf.Record(systems.PhaseCollision, time.Since(start))

	start = time.Now()
	systems.AdvanceBall(&m.Ball, dt)
	g.perf.Record(systems.PhaseIntegrate, time.Since(start))
}
