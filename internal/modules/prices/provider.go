package prices

import "context"

// Quote is a current price observation for one symbol. Degraded marks
// fallback data served after a provider failure; consumers cannot tell stale
// fallback from live data beyond this flag.
type Quote struct {
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Source   string  `json:"source"`
	Degraded bool    `json:"degraded,omitempty"`
}

// Provider supplies current and historical prices for the risk engine. The
// engine itself never fetches anything; a provider is injected per analysis
// call.
type Provider interface {
	// CurrentPrice returns the latest known price for a symbol.
	CurrentPrice(ctx context.Context, symbol string) (Quote, error)

	// HistoricalPrices returns up to `days` daily closes, oldest to newest.
	HistoricalPrices(ctx context.Context, symbol string, days int) ([]float64, error)
}
