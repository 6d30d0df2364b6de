package formulas

// HHI calculates the Herfindahl-Hirschman Index over a set of portfolio
// weights.
//
// The weights need not be pre-normalized; they are scaled to sum to 1 before
// squaring, which makes the index invariant to uniform scaling of the input.
// The result ranges from 1/n (perfectly equal-weighted across n positions) to
// 1.0 (a single position). Empty input or a non-positive weight sum yields 0.
func HHI(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	var hhi float64
	for _, w := range weights {
		norm := w / total
		hhi += norm * norm
	}

	return hhi
}
