package formulas

import "math"

// ScoreWeights holds the relative weights of the three composite risk score
// inputs. The weights are assumed (not enforced) to sum to 1.0.
type ScoreWeights struct {
	Volatility    float64
	Concentration float64
	Correlation   float64
}

// DefaultScoreWeights are the standard composite weights:
// 50% volatility, 30% concentration, 20% correlation.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Volatility:    0.5,
		Concentration: 0.3,
		Correlation:   0.2,
	}
}

// RiskScore calculates the overall portfolio risk score on a 1-10 scale.
//
// Volatility is capped at 1.0 (100% annualized) so all three inputs live on a
// 0-1 scale, the weighted sum is stretched to 1-10 and clamped. Pure and
// deterministic: identical inputs always give the identical score.
func RiskScore(volatility, concentration, correlation float64, weights ScoreWeights) float64 {
	normVolatility := math.Min(volatility, 1.0)

	raw := weights.Volatility*normVolatility +
		weights.Concentration*concentration +
		weights.Correlation*correlation

	scaled := 1 + raw*9

	return Round2(Clamp(scaled, 1.0, 10.0))
}

// Clamp restricts a value to a given range.
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Round1 rounds to 1 decimal place
func Round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// Round2 rounds to 2 decimal places
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Round4 rounds to 4 decimal places
func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
