package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/systems"
)

// onContact feeds one collision result to telemetry and the spark system.
func (g *Game) onContact(c systems.Contact) {
	b := &g.match.Ball

	switch {
	case c.PaddleHit():
		g.collector.RecordPaddleHit()
		g.sparks.Emit(b.Rect.CenterX(), b.Rect.CenterY(), b.VelX)

	case c == systems.ContactWall:
		g.collector.RecordWallHit()
		g.sparks.Emit(b.Rect.CenterX(), b.Rect.CenterY(), 0)

	default:
		scorer, ok := c.Scorer()
		if !ok {
			return
		}
		rec := g.collector.RecordPoint(g.match, scorer)
		if err := g.output.WritePoint(rec); err != nil {
			slog.Error("failed to write point", "error", err)
		}
		slog.Info("point_scored", "match_id", rec.MatchID, "point", rec)
		for _, bm := range g.bookmarks.Check(rec) {
			bm.LogBookmark()
		}
	}
}

// onServe logs a ball placement.
func (g *Game) onServe() {
	b := &g.match.Ball
	slog.Debug("ball_served",
		"server", g.match.Server().String(),
		"vel_x", b.VelX,
		"vel_y", b.VelY,
		"y", b.Rect.Y,
	)
}

// onGameOver writes the match summary and counts the finished match.
func (g *Game) onGameOver() {
	g.matches++
	summary := g.collector.Summary(g.match)
	if err := g.output.WriteMatch(summary); err != nil {
		slog.Error("failed to write match", "error", err)
	}
	slog.Info("match_over", "summary", summary, "matches", g.matches)
}
