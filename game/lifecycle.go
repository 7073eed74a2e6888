package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/systems"
)

// Frame runs one full iteration: input, simulation, draw and present.
// dt is the time in milliseconds since the previous frame.
// Returns false when the loop should stop.
func (g *Game) Frame(dt float64) bool {
	g.frameStats.Record(dt)

	start := time.Now()
	g.HandleEvents(g.input.Poll())
	g.perf.Record(systems.PhaseInput, time.Since(start))
	if g.quit {
		slog.Info("quit_requested", "frames", g.frames)
		return false
	}

	if g.autoplay && g.match.Mode == components.ModeGameOver && !g.matchLimitReached() {
		g.restart()
	}

	g.Update(dt)

	start = time.Now()
	g.Draw()
	g.perf.Record(systems.PhaseRender, time.Since(start))

	g.frames++
	if g.maxFrames > 0 && g.frames >= g.maxFrames {
		slog.Info("max_frames_reached", "frames", g.frames)
		return false
	}
	if g.matchLimitReached() {
		slog.Info("max_matches_reached", "matches", g.matches)
		return false
	}
	return true
}

// Run loops until quit, a frame or match limit, or ctx is done.
// frameMS > 0 feeds a fixed dt to every frame instead of the measured
// wall-clock time, which lets headless runs go as fast as the CPU allows.
func (g *Game) Run(ctx context.Context, frameMS float64) error {
	last := g.clock.Now()
	dt := frameMS

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !g.Frame(dt) {
			return nil
		}

		now := g.clock.Now()
		if frameMS > 0 {
			dt = frameMS
		} else {
			dt = float64(now.Sub(last)) / float64(time.Millisecond)
		}
		last = now
	}
}

// restart resets the match and starts a new telemetry match.
func (g *Game) restart() {
	m := g.match
	if m.Mode == components.ModePlaying && g.collector.Points() > 0 {
		slog.Info("match_abandoned", "summary", g.collector.Summary(m))
	}

	systems.Restart(m, g.params, g.rng)
	m.Left.AI = g.autoplay
	g.sparks.Clear()
	g.integ.Reset()
	g.collector.StartMatch()

	slog.Info("match_started",
		"match_id", g.collector.MatchID(),
		"server", m.Server().String(),
		"right_ai", m.Right.AI,
	)
}

func (g *Game) matchLimitReached() bool {
	return g.maxMatches > 0 && g.matches >= g.maxMatches
}
