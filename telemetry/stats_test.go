package telemetry

import (
	"math"
	"testing"
)

func TestMeanStd(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{5}, 5, 0},
		{"constant", []float64{3, 3, 3}, 3, 0},
		{"spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, math.Sqrt(32.0 / 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := MeanStd(tt.values)
			if math.Abs(mean-tt.wantMean) > 0.001 || math.Abs(std-tt.wantStd) > 0.001 {
				t.Errorf("MeanStd(%v) = %v, %v, want %v, %v", tt.values, mean, std, tt.wantMean, tt.wantStd)
			}
		})
	}
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"empty", nil, 0.5, 0},
		{"single", []float64{7}, 0.95, 7},
		{"unsorted median", []float64{3, 1, 2}, 0.5, 2},
		{"max", []float64{5, 1, 9}, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantile(tt.values, tt.p); got != tt.want {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}

	// Input must not be reordered
	values := []float64{3, 1, 2}
	Quantile(values, 0.5)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Quantile modified its input: %v", values)
	}
}
