package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/scheduler"
)

// daemonCmd holds the flags for the 'daemon' subcommand.
type daemonCmd struct {
	runNow bool
}

func (*daemonCmd) Name() string     { return "daemon" }
func (*daemonCmd) Synopsis() string { return "run the scheduled price sync loop" }
func (*daemonCmd) Usage() string {
	return `riskcli daemon [-now]

  Starts the cron scheduler and syncs watchlist prices on the configured
  schedule (SYNC_SCHEDULE) until interrupted.
`
}

func (c *daemonCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.runNow, "now", false, "Run one sync immediately on startup")
}

func (c *daemonCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if a.cfg.AlphaVantageKey == "" {
		fmt.Fprintln(os.Stderr, "ALPHA_VANTAGE_API_KEY is required for the sync daemon")
		return subcommands.ExitUsageError
	}

	job, db, err := buildPriceSyncJob(a)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	sched := scheduler.New(a.log)
	if err := sched.AddJob(a.cfg.SyncSchedule, job); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("failed to register sync job: %w", err))
		return subcommands.ExitFailure
	}

	if c.runNow {
		if err := sched.RunNow(job); err != nil {
			a.log.Error().Err(err).Msg("Initial sync failed")
		}
	}

	sched.Start()
	defer sched.Stop()

	a.log.Info().Str("schedule", a.cfg.SyncSchedule).Msg("Price sync daemon started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.log.Info().Msg("Shutting down")
	return subcommands.ExitSuccess
}
