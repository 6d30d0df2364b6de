package formulas

import "math"

// AveragePairwiseCorrelation calculates the average absolute pairwise Pearson
// correlation across a collection of per-asset return series.
//
// The series may be ragged; they are truncated to the shortest common length
// before the correlation matrix is formed. Empty series are dropped first.
// With fewer than two usable series, or a common length below two, there is
// nothing to correlate and the result is 0. A NaN correlation (zero-variance
// series) counts as 0. The result is always in [0, 1].
func AveragePairwiseCorrelation(returnSeries [][]float64) float64 {
	nonEmpty := make([][]float64, 0, len(returnSeries))
	for _, series := range returnSeries {
		if len(series) > 0 {
			nonEmpty = append(nonEmpty, series)
		}
	}
	if len(nonEmpty) < 2 {
		return 0
	}

	minLen := len(nonEmpty[0])
	for _, series := range nonEmpty[1:] {
		if len(series) < minLen {
			minLen = len(series)
		}
	}
	if minLen < 2 {
		return 0
	}

	trimmed := make([][]float64, len(nonEmpty))
	for i, series := range nonEmpty {
		trimmed[i] = series[:minLen]
	}

	// Average of the absolute upper triangle of the correlation matrix.
	var sum float64
	var pairs int
	for i := 0; i < len(trimmed); i++ {
		for j := i + 1; j < len(trimmed); j++ {
			corr := Correlation(trimmed[i], trimmed[j])
			if math.IsNaN(corr) {
				corr = 0
			}
			sum += math.Abs(corr)
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}

	return sum / float64(pairs)
}
