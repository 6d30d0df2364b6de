package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&analyzeCmd{}, "analysis")
	subcommands.Register(&scenariosCmd{}, "analysis")
	subcommands.Register(&stocksCmd{}, "analysis")
	subcommands.Register(&alertsCmd{}, "analysis")

	subcommands.Register(&syncCmd{}, "data")
	subcommands.Register(&daemonCmd{}, "data")
	subcommands.Register(&watchlistCmd{}, "data")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
