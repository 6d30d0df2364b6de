package prices

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/clients/alphavantage"
)

// LiveProvider serves prices from Alpha Vantage, degrading to a fallback
// provider when the API fails. Quotes obtained via fallback are flagged
// degraded; there is no caching and no retry here.
type LiveProvider struct {
	client   *alphavantage.Client
	fallback Provider
	log      zerolog.Logger
}

// NewLiveProvider creates a live provider. fallback may be nil, in which case
// provider failures surface as errors.
func NewLiveProvider(client *alphavantage.Client, fallback Provider, log zerolog.Logger) *LiveProvider {
	return &LiveProvider{
		client:   client,
		fallback: fallback,
		log:      log.With().Str("provider", "live").Logger(),
	}
}

// CurrentPrice fetches the latest quote, falling back on API failure.
func (p *LiveProvider) CurrentPrice(ctx context.Context, symbol string) (Quote, error) {
	quote, err := p.client.GlobalQuote(ctx, symbol)
	if err == nil {
		return Quote{Symbol: quote.Symbol, Price: quote.Price, Source: "alphavantage"}, nil
	}

	p.log.Warn().Str("symbol", symbol).Err(err).Msg("Quote fetch failed, using fallback")

	if p.fallback == nil {
		return Quote{}, fmt.Errorf("quote fetch failed for %s: %w", symbol, err)
	}

	fallbackQuote, fbErr := p.fallback.CurrentPrice(ctx, symbol)
	if fbErr != nil {
		return Quote{}, fmt.Errorf("quote fetch failed for %s and fallback has no data: %w", symbol, err)
	}
	fallbackQuote.Degraded = true
	return fallbackQuote, nil
}

// HistoricalPrices fetches daily closes, falling back on API failure.
func (p *LiveProvider) HistoricalPrices(ctx context.Context, symbol string, days int) ([]float64, error) {
	closes, err := p.client.DailySeries(ctx, symbol, days)
	if err == nil {
		return closes, nil
	}

	p.log.Warn().Str("symbol", symbol).Err(err).Msg("History fetch failed, using fallback")

	if p.fallback == nil {
		return nil, fmt.Errorf("history fetch failed for %s: %w", symbol, err)
	}
	return p.fallback.HistoricalPrices(ctx, symbol, days)
}
