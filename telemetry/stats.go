package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MeanStd returns the mean and sample standard deviation of values.
// Fewer than two values give a zero deviation.
func MeanStd(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// Quantile returns the empirical p-quantile of values (unsorted input is fine).
// Returns 0 for an empty slice.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
