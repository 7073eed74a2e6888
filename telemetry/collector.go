package telemetry

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/pong/components"
)

// Collector accumulates contact and scoring events for the current match.
type Collector struct {
	matchID string
	simMS   float64
	points  int

	paddleHits    int
	wallHits      int
	rallyWallHits int

	rallyHits []float64
	rallyMS   []float64
	longest   int

	newID func() string
}

// NewCollector creates a collector with a fresh match already started.
func NewCollector() *Collector {
	c := &Collector{newID: uuid.NewString}
	c.StartMatch()
	return c
}

// StartMatch discards all counters and assigns a new match ID.
func (c *Collector) StartMatch() {
	c.matchID = c.newID()
	c.simMS = 0
	c.points = 0
	c.paddleHits = 0
	c.wallHits = 0
	c.rallyWallHits = 0
	c.rallyHits = c.rallyHits[:0]
	c.rallyMS = c.rallyMS[:0]
	c.longest = 0
}

// MatchID returns the current match identifier.
func (c *Collector) MatchID() string {
	return c.matchID
}

// Points returns the number of points recorded in the current match.
func (c *Collector) Points() int {
	return c.points
}

// Advance adds simulated time in milliseconds.
func (c *Collector) Advance(dt float64) {
	c.simMS += dt
}

// RecordPaddleHit records a paddle contact.
func (c *Collector) RecordPaddleHit() {
	c.paddleHits++
}

// RecordWallHit records a top or bottom wall bounce during a rally.
func (c *Collector) RecordWallHit() {
	c.wallHits++
	c.rallyWallHits++
}

// RecordPoint closes the current rally. m must already reflect the point:
// scores updated, serve handed over and rally counters not yet reset.
func (c *Collector) RecordPoint(m *components.Match, scorer components.Side) PointRecord {
	c.points++
	c.rallyHits = append(c.rallyHits, float64(m.RallyHits))
	c.rallyMS = append(c.rallyMS, m.RallyMS)
	if m.RallyHits > c.longest {
		c.longest = m.RallyHits
	}

	rec := PointRecord{
		MatchID:    c.matchID,
		Point:      c.points,
		SimTimeS:   c.simMS / 1000,
		Scorer:     scorer.String(),
		LeftScore:  m.Left.Score,
		RightScore: m.Right.Score,
		RallyHits:  m.RallyHits,
		RallyMS:    m.RallyMS,
		WallHits:   c.rallyWallHits,
		NextServer: m.Server().String(),
	}
	c.rallyWallHits = 0
	return rec
}

// Summary aggregates the current match.
func (c *Collector) Summary(m *components.Match) MatchSummary {
	hitsMean, hitsStd := MeanStd(c.rallyHits)
	msMean, msStd := MeanStd(c.rallyMS)

	winner := ""
	if m.Mode == components.ModeGameOver {
		winner = m.Winner.String()
	}

	return MatchSummary{
		MatchID:       c.matchID,
		Winner:        winner,
		LeftScore:     m.Left.Score,
		RightScore:    m.Right.Score,
		Points:        c.points,
		DurationS:     c.simMS / 1000,
		PaddleHits:    c.paddleHits,
		WallHits:      c.wallHits,
		RallyHitsMean: hitsMean,
		RallyHitsStd:  hitsStd,
		RallyMSMean:   msMean,
		RallyMSStd:    msStd,
		LongestRally:  c.longest,
	}
}
