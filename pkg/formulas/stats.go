package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization base for daily return series.
const TradingDaysPerYear = 252

// CalculateReturns converts a chronological price series into simple
// period-over-period returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]
//
// Fewer than two prices yields an empty slice (no data, not an error).
// A zero price cannot anchor a return, so that period contributes 0.
func CalculateReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}

	return returns
}

// AnnualizedVolatility calculates annualized volatility from a chronological
// price series.
// Formula: Population Std Dev of Daily Returns × sqrt(252 trading days)
//
// The population standard deviation (n denominator) is used. Fewer than two
// returns yields 0.0.
func AnnualizedVolatility(prices []float64) float64 {
	returns := CalculateReturns(prices)
	if len(returns) < 2 {
		return 0
	}

	return stat.PopStdDev(returns, nil) * math.Sqrt(TradingDaysPerYear)
}

// Correlation calculates the Pearson correlation coefficient between two
// equal-length datasets. Mismatched or empty inputs yield 0.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
