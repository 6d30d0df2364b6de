package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/domain"
	"github.com/aristeidis/portfolio-risk/internal/modules/risk"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	file      string
	tolerance string
	days      int
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "portfolio risk analysis with interpretation" }
func (*analyzeCmd) Usage() string {
	return `riskcli analyze [-f <holdings.json>] [-tolerance <profile>] [-days <n>]

  Reads a JSON array of holdings (stdin by default) and prints the full risk
  analysis: composite score, breakdown, per-holding weights and the
  deterministic interpretation.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Holdings JSON file (default stdin)")
	f.StringVar(&c.tolerance, "tolerance", "", "Risk tolerance profile (beginner, intermediate, senior)")
	f.IntVar(&c.days, "days", 0, "Days of price history to analyze (default from config)")
}

func (c *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	svc := risk.NewService(a.log)
	enriched := svc.Enrich(ctx, holdings, provider, days)
	analysis := svc.Analyze(ctx, enriched)
	analysis.Tolerance = domain.NormalizeTolerance(c.tolerance)

	out := struct {
		risk.Analysis
		Interpretation risk.Interpretation `json:"interpretation"`
	}{
		Analysis:       analysis,
		Interpretation: risk.Interpret(analysis),
	}
	if err := printJSON(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
