package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/modules/risk"
	"github.com/aristeidis/portfolio-risk/internal/modules/stocks"
)

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	file string
	days int
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "per-stock risk scores and hold/sell recommendations" }
func (*stocksCmd) Usage() string {
	return `riskcli stocks [-f <holdings.json>] [-days <n>]

  Scores every holding individually and prints hold/sell recommendations,
  sorted with the riskiest positions first.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Holdings JSON file (default stdin)")
	f.IntVar(&c.days, "days", 0, "Days of price history to analyze (default from config)")
}

func (c *stocksCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	review := stocks.NewClassifier(a.log).AnalyzeAll(enriched)
	if err := printJSON(review); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
