package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/internal/modules/alerts"
	"github.com/aristeidis/portfolio-risk/internal/modules/risk"
)

// alertsCmd holds the flags for the 'alerts' subcommand.
type alertsCmd struct {
	file      string
	tolerance string
	days      int
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "rebalancing, tax-loss and momentum alerts" }
func (*alertsCmd) Usage() string {
	return `riskcli alerts [-f <holdings.json>] [-tolerance <profile>] [-days <n>]

  Compiles an alert report for the portfolio: overweight positions, tax-loss
  harvesting opportunities and RSI momentum signals.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Holdings JSON file (default stdin)")
	f.StringVar(&c.tolerance, "tolerance", "", "Risk tolerance profile (beginner, intermediate, senior)")
	f.IntVar(&c.days, "days", 0, "Days of price history to analyze (default from config)")
}

func (c *alertsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings, err := loadHoldings(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	provider, cleanup, err := a.provider()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	days := c.days
	if days <= 0 {
		days = a.cfg.HistoryDays
	}

	enriched := risk.NewService(a.log).Enrich(ctx, holdings, provider, days)
	report := alerts.NewService(a.log).Compile(enriched, domain.NormalizeTolerance(c.tolerance))
	if err := printJSON(report); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
