package prices

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// StoreProvider serves prices from the local history store and the quotes
// table populated by the sync job. Data served from here is always flagged
// degraded when the quote is missing and the latest stored close stands in.
type StoreProvider struct {
	store  *HistoryStore
	quotes *QuoteRepository
	log    zerolog.Logger
}

// NewStoreProvider creates a provider over the local store.
func NewStoreProvider(store *HistoryStore, quotes *QuoteRepository, log zerolog.Logger) *StoreProvider {
	return &StoreProvider{
		store:  store,
		quotes: quotes,
		log:    log.With().Str("provider", "store").Logger(),
	}
}

// CurrentPrice returns the last synced quote, or the latest stored close
// (flagged degraded) when no quote was ever synced.
func (p *StoreProvider) CurrentPrice(_ context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if p.quotes != nil {
		if price, source, err := p.quotes.Get(symbol); err == nil {
			return Quote{Symbol: symbol, Price: price, Source: source}, nil
		}
	}

	latest, err := p.store.LatestClose(symbol)
	if err != nil {
		return Quote{}, fmt.Errorf("no local price data for %s: %w", symbol, err)
	}

	p.log.Debug().Str("symbol", symbol).Msg("Serving latest stored close as quote")
	return Quote{Symbol: symbol, Price: latest, Source: "store", Degraded: true}, nil
}

// HistoricalPrices returns stored daily closes, oldest to newest.
func (p *StoreProvider) HistoricalPrices(_ context.Context, symbol string, days int) ([]float64, error) {
	closes, err := p.store.DailyCloses(symbol, days)
	if err != nil {
		return nil, err
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("no stored history for %s", symbol)
	}
	return closes, nil
}
