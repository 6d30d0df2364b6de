package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/aristeidis/portfolio-risk/internal/modules/prices"
)

// watchlistCmd holds the flags for the 'watchlist' subcommand.
type watchlistCmd struct {
	add string
}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "list or extend the synced symbol watchlist" }
func (*watchlistCmd) Usage() string {
	return `riskcli watchlist [-add <symbol>]

  Prints the symbols the sync job keeps fresh. With -add, registers a new
  symbol first.
`
}

func (c *watchlistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Symbol to add to the watchlist")
}

func (c *watchlistCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	db, err := a.openDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	repo := prices.NewWatchlistRepository(db, a.log)
	if err := repo.Seed(a.cfg.Watchlist); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.add != "" {
		if err := repo.Add(c.add); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	symbols, err := repo.All()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, symbol := range symbols {
		fmt.Println(symbol)
	}
	return subcommands.ExitSuccess
}
