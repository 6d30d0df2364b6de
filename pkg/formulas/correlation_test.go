package formulas

import (
	"math"
	"testing"
)

func TestAveragePairwiseCorrelation(t *testing.T) {
	tests := []struct {
		name   string
		series [][]float64
		want   float64
	}{
		{
			name: "perfectly correlated pair",
			series: [][]float64{
				{0.1, 0.2, 0.3},
				{0.2, 0.4, 0.6},
			},
			want: 1.0,
		},
		{
			name: "perfectly anti-correlated pair counts as absolute",
			series: [][]float64{
				{0.1, 0.2, 0.3},
				{-0.1, -0.2, -0.3},
			},
			want: 1.0,
		},
		{
			name:   "single series",
			series: [][]float64{{0.1, 0.2, 0.3}},
			want:   0.0,
		},
		{
			name:   "no series",
			series: [][]float64{},
			want:   0.0,
		},
		{
			name: "empty series are dropped",
			series: [][]float64{
				{},
				{0.1, 0.2, 0.3},
			},
			want: 0.0,
		},
		{
			name: "common length below two",
			series: [][]float64{
				{0.1},
				{0.2, 0.3},
			},
			want: 0.0,
		},
		{
			name: "zero-variance series counts as zero",
			series: [][]float64{
				{0.1, 0.1, 0.1},
				{0.1, 0.2, 0.3},
			},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AveragePairwiseCorrelation(tt.series)
			if math.IsNaN(got) {
				t.Fatalf("result must never be NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAveragePairwiseCorrelation_AlwaysInUnitRange(t *testing.T) {
	inputs := [][][]float64{
		{{0.1, -0.2, 0.3, 0.05}, {0.2, 0.1, -0.3, 0.15}, {0.0, 0.0, 0.0, 0.0}},
		{{1, 2, 3}, {3, 2, 1}, {2, 2, 2}, {1, 3, 2}},
		{{-0.5, 0.5}, {0.5, -0.5}},
	}

	for i, series := range inputs {
		got := AveragePairwiseCorrelation(series)
		if math.IsNaN(got) || got < 0 || got > 1 {
			t.Errorf("input %d: result %v outside [0,1]", i, got)
		}
	}
}

func TestAveragePairwiseCorrelation_RaggedSeriesTruncated(t *testing.T) {
	// The longer series is trimmed to the shortest common length; the first
	// three points of both series are perfectly correlated.
	series := [][]float64{
		{0.1, 0.2, 0.3},
		{0.1, 0.2, 0.3, -0.9, 0.5},
	}

	got := AveragePairwiseCorrelation(series)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("got %v, want 1.0", got)
	}
}
