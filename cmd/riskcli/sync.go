package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/clients/alphavantage"
	"github.com/aristeidis/portfolio-risk/internal/modules/prices"
	"github.com/aristeidis/portfolio-risk/internal/scheduler"
)

// syncCmd holds the flags for the 'sync' subcommand.
type syncCmd struct{}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "one-shot watchlist price sync" }
func (*syncCmd) Usage() string {
	return `riskcli sync

  Fetches current quotes and daily price history for every watchlist symbol
  and stores them locally for offline analysis (PRICE_SOURCE=store).
`
}

func (*syncCmd) SetFlags(*flag.FlagSet) {}

func (c *syncCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if a.cfg.AlphaVantageKey == "" {
		fmt.Fprintln(os.Stderr, "ALPHA_VANTAGE_API_KEY is required for sync")
		return subcommands.ExitUsageError
	}

	job, db, err := buildPriceSyncJob(a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := job.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// buildPriceSyncJob wires the price sync collaborators. The caller owns the
// returned database handle.
func buildPriceSyncJob(a *app) (*scheduler.PriceSyncJob, interface{ Close() error }, error) {
	db, err := a.openDatabase()
	if err != nil {
		return nil, nil, err
	}

	watchlist := prices.NewWatchlistRepository(db, a.log)
	if err := watchlist.Seed(a.cfg.Watchlist); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to seed watchlist: %w", err)
	}

	job := scheduler.NewPriceSyncJob(scheduler.PriceSyncConfig{
		Log:         a.log,
		Client:      alphavantage.NewClient(a.cfg.AlphaVantageURL, a.cfg.AlphaVantageKey, a.log),
		Watchlist:   watchlist,
		Quotes:      prices.NewQuoteRepository(db, a.log),
		Store:       prices.NewHistoryStore(a.cfg.HistoryDir, a.log),
		HistoryDays: a.cfg.HistoryDays,
	})
	return job, db, nil
}
