package telemetry

import (
	"log/slog"
	"time"
)

// FrameStats keeps a rolling window of frame durations.
type FrameStats struct {
	windowSize int
	samples    []float64 // milliseconds
	writeIndex int
	count      int
}

// NewFrameStats creates a frame timer over the last windowSize frames.
func NewFrameStats(windowSize int) *FrameStats {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameStats{
		windowSize: windowSize,
		samples:    make([]float64, windowSize),
	}
}

// Record adds one frame's dt in milliseconds.
func (f *FrameStats) Record(dtMS float64) {
	f.samples[f.writeIndex] = dtMS
	f.writeIndex = (f.writeIndex + 1) % f.windowSize
	if f.count < f.windowSize {
		f.count++
	}
}

// FrameSummary is an aggregate over the current window.
type FrameSummary struct {
	Frames int
	MeanMS float64
	StdMS  float64
	P95MS  float64
	FPS    float64
}

// Summary computes aggregate statistics over the recorded window.
func (f *FrameStats) Summary() FrameSummary {
	if f.count == 0 {
		return FrameSummary{}
	}
	window := f.samples[:f.count]
	mean, std := MeanStd(window)
	s := FrameSummary{
		Frames: f.count,
		MeanMS: mean,
		StdMS:  std,
		P95MS:  Quantile(window, 0.95),
	}
	if mean > 0 {
		s.FPS = float64(time.Second/time.Millisecond) / mean
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Float64("mean_ms", s.MeanMS),
		slog.Float64("std_ms", s.StdMS),
		slog.Float64("p95_ms", s.P95MS),
		slog.Float64("fps", s.FPS),
	)
}
