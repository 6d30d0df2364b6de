package domain

import "strings"

// SymbolRiskClass buckets a ticker into the coarse risk classes used by the
// what-if simulator. Each class carries the fixed risk-score delta applied
// when a position in that class is added to a portfolio. The deltas are
// deliberate demo-calibrated heuristics, not estimates derived from history.
type SymbolRiskClass struct {
	Name     string
	AddDelta float64
}

var (
	// ClassIndexFund covers broad index funds and ETFs; adding one is
	// treated as risk-reducing.
	ClassIndexFund = SymbolRiskClass{Name: "Index Fund/ETF", AddDelta: -0.8}

	// ClassHighVolatility covers historically volatile names.
	ClassHighVolatility = SymbolRiskClass{Name: "High-Volatility Stock", AddDelta: 0.6}

	// ClassLargeCapStable covers large-cap names with steadier price action.
	ClassLargeCapStable = SymbolRiskClass{Name: "Large-Cap Stock", AddDelta: 0.2}

	// ClassUnclassified is the default bucket.
	ClassUnclassified = SymbolRiskClass{Name: "Stock", AddDelta: 0.2}
)

var indexFundSymbols = map[string]struct{}{
	"SPY": {}, "VTI": {}, "QQQ": {}, "VOO": {}, "IVV": {},
	"VT": {}, "VEA": {}, "BND": {}, "AGG": {},
}

var highVolatilitySymbols = map[string]struct{}{
	"TSLA": {}, "NVDA": {}, "COIN": {}, "AMD": {},
	"GME": {}, "AMC": {}, "MARA": {}, "RIOT": {},
}

var largeCapStableSymbols = map[string]struct{}{
	"AAPL": {}, "MSFT": {}, "GOOGL": {}, "GOOG": {}, "META": {},
	"AMZN": {}, "JNJ": {}, "PG": {}, "KO": {}, "WMT": {},
}

// ClassifySymbol looks up the risk class for a ticker. The lookup is the
// single source of truth for the simulator's symbol-class heuristics.
func ClassifySymbol(symbol string) SymbolRiskClass {
	s := strings.ToUpper(strings.TrimSpace(symbol))

	if _, ok := indexFundSymbols[s]; ok {
		return ClassIndexFund
	}
	if _, ok := highVolatilitySymbols[s]; ok {
		return ClassHighVolatility
	}
	if _, ok := largeCapStableSymbols[s]; ok {
		return ClassLargeCapStable
	}
	return ClassUnclassified
}
