// Package telemetry tracks rally and match statistics and writes them as CSV.
package telemetry

import "log/slog"

// PointRecord is one row of points.csv, written when a point is scored.
type PointRecord struct {
	MatchID    string  `csv:"match_id"`
	Point      int     `csv:"point"`
	SimTimeS   float64 `csv:"sim_time_s"`
	Scorer     string  `csv:"scorer"`
	LeftScore  int     `csv:"left_score"`
	RightScore int     `csv:"right_score"`
	RallyHits  int     `csv:"rally_hits"`
	RallyMS    float64 `csv:"rally_ms"`
	WallHits   int     `csv:"wall_hits"`
	NextServer string  `csv:"next_server"`
}

// MatchSummary is one row of matches.csv, written when a match ends.
type MatchSummary struct {
	MatchID    string  `csv:"match_id"`
	Winner     string  `csv:"winner"`
	LeftScore  int     `csv:"left_score"`
	RightScore int     `csv:"right_score"`
	Points     int     `csv:"points"`
	DurationS  float64 `csv:"duration_s"`
	PaddleHits int     `csv:"paddle_hits"`
	WallHits   int     `csv:"wall_hits"`

	RallyHitsMean float64 `csv:"rally_hits_mean"`
	RallyHitsStd  float64 `csv:"rally_hits_std"`
	RallyMSMean   float64 `csv:"rally_ms_mean"`
	RallyMSStd    float64 `csv:"rally_ms_std"`
	LongestRally  int     `csv:"longest_rally"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s MatchSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("match_id", s.MatchID),
		slog.String("winner", s.Winner),
		slog.Int("left", s.LeftScore),
		slog.Int("right", s.RightScore),
		slog.Float64("duration_s", s.DurationS),
		slog.Int("paddle_hits", s.PaddleHits),
		slog.Int("wall_hits", s.WallHits),
		slog.Float64("rally_hits_mean", s.RallyHitsMean),
		slog.Int("longest_rally", s.LongestRally),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (p PointRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("point", p.Point),
		slog.String("scorer", p.Scorer),
		slog.Int("left", p.LeftScore),
		slog.Int("right", p.RightScore),
		slog.Int("rally_hits", p.RallyHits),
		slog.Float64("rally_ms", p.RallyMS),
	)
}
