package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristeidis/portfolio-risk/internal/clients/alphavantage"
	"github.com/aristeidis/portfolio-risk/internal/modules/prices"
)

// PriceSyncJob refreshes quotes and daily price history for every watchlist
// symbol, persisting them for offline analysis.
type PriceSyncJob struct {
	log         zerolog.Logger
	client      *alphavantage.Client
	watchlist   *prices.WatchlistRepository
	quotes      *prices.QuoteRepository
	store       *prices.HistoryStore
	historyDays int
	timeout     time.Duration
}

// PriceSyncConfig holds the collaborators for a price sync job.
type PriceSyncConfig struct {
	Log         zerolog.Logger
	Client      *alphavantage.Client
	Watchlist   *prices.WatchlistRepository
	Quotes      *prices.QuoteRepository
	Store       *prices.HistoryStore
	HistoryDays int
}

func NewPriceSyncJob(cfg PriceSyncConfig) *PriceSyncJob {
	return &PriceSyncJob{
		log:         cfg.Log.With().Str("job", "price_sync").Logger(),
		client:      cfg.Client,
		watchlist:   cfg.Watchlist,
		quotes:      cfg.Quotes,
		store:       cfg.Store,
		historyDays: cfg.HistoryDays,
		timeout:     5 * time.Minute,
	}
}

// Name returns the job name
func (j *PriceSyncJob) Name() string {
	return "price_sync"
}

// Run syncs every watchlist symbol. Per-symbol failures are logged and
// skipped so one rate-limited request does not abort the whole pass.
func (j *PriceSyncJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	symbols, err := j.watchlist.All()
	if err != nil {
		return fmt.Errorf("failed to load watchlist: %w", err)
	}
	if len(symbols) == 0 {
		j.log.Info().Msg("Watchlist empty, nothing to sync")
		return nil
	}

	j.log.Info().Int("symbols", len(symbols)).Msg("Starting price sync")
	start := time.Now()

	synced := 0
	for _, symbol := range symbols {
		if err := j.syncSymbol(ctx, symbol); err != nil {
			j.log.Error().Err(err).Str("symbol", symbol).Msg("Symbol sync failed")
			continue
		}
		synced++
	}

	j.log.Info().
		Int("synced", synced).
		Int("failed", len(symbols)-synced).
		Dur("duration", time.Since(start)).
		Msg("Price sync completed")

	if synced == 0 {
		return fmt.Errorf("price sync failed for all %d symbols", len(symbols))
	}
	return nil
}

func (j *PriceSyncJob) syncSymbol(ctx context.Context, symbol string) error {
	quote, err := j.client.GlobalQuote(ctx, symbol)
	if err != nil {
		return fmt.Errorf("quote fetch failed: %w", err)
	}
	if err := j.quotes.Upsert(symbol, quote.Price, "alphavantage"); err != nil {
		return fmt.Errorf("quote save failed: %w", err)
	}

	bars, err := j.client.DatedDailySeries(ctx, symbol, j.historyDays)
	if err != nil {
		return fmt.Errorf("series fetch failed: %w", err)
	}
	closes := make([]prices.DailyClose, 0, len(bars))
	for _, bar := range bars {
		closes = append(closes, prices.DailyClose{Date: bar.Date, Close: bar.Close})
	}
	if err := j.store.SaveDailyCloses(symbol, closes); err != nil {
		return fmt.Errorf("history save failed: %w", err)
	}

	j.log.Debug().
		Str("symbol", symbol).
		Float64("price", quote.Price).
		Int("closes", len(closes)).
		Msg("Symbol synced")
	return nil
}
