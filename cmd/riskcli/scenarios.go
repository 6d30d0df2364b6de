package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/modules/risk"
	"github.com/aristeidis/portfolio-risk/internal/modules/scenarios"
)

// scenariosCmd holds the flags for the 'scenarios' subcommand.
type scenariosCmd struct {
	file   string
	kind   string
	symbol string
	amount float64
	days   int
}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "what-if scenario simulation" }
func (*scenariosCmd) Usage() string {
	return `riskcli scenarios [-f <holdings.json>] [-kind <kind> -symbol <sym> -amount <usd>] [-days <n>]

  Analyzes the portfolio, then either runs the standard scenario set (add a
  broad index fund, increase the largest holding, trim the largest holding)
  or, when -kind is given, simulates a single custom scenario.
  Kinds: add, remove, increase_position, decrease_position.
`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Holdings JSON file (default stdin)")
	f.StringVar(&c.kind, "kind", "", "Scenario kind for a single custom simulation")
	f.StringVar(&c.symbol, "symbol", "", "Symbol for the custom scenario")
	f.Float64Var(&c.amount, "amount", 0, "Dollar amount for the custom scenario")
	f.IntVar(&c.days, "days", 0, "Days of price history to analyze (default from config)")
}

func (c *scenariosCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	riskSvc := risk.NewService(a.log)
	analysis := riskSvc.Analyze(ctx, riskSvc.Enrich(ctx, holdings, provider, days))
	if analysis.Empty {
		fmt.Fprintln(os.Stderr, "cannot simulate scenarios on an empty portfolio")
		return subcommands.ExitFailure
	}

	svc := scenarios.NewService(a.log)

	if c.kind != "" {
		result, err := svc.Simulate(scenarios.Kind(c.kind), analysis.TotalValue, analysis.RiskScore, c.symbol, c.amount)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if err := printJSON(result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	largestSymbol, largestValue := largestHolding(analysis)
	comparison := svc.RunStandardScenarios(analysis.TotalValue, analysis.RiskScore, largestSymbol, largestValue)
	if err := printJSON(comparison); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func largestHolding(a risk.Analysis) (string, float64) {
	symbol, value := "", 0.0
	for _, h := range a.Holdings {
		if h.Value > value || symbol == "" {
			symbol, value = h.Symbol, h.Value
		}
	}
	return symbol, value
}
