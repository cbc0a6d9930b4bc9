package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Advise   AdviseCmd        `cmd:"" help:"Compute the optimal next action for a position"`
	Odds     OddsCmd          `cmd:"" help:"Compute the exact probability of a single bid"`
	Simulate SimulateCmd      `cmd:"" help:"Cross-check the exact probability against Monte Carlo"`
	Stress   StressCmd        `cmd:"" help:"Cross-check random scenarios and report the worst difference"`
	Serve    ServeCmd         `cmd:"" help:"Run the WebSocket advisor server"`
	Ask      AskCmd           `cmd:"" help:"Query a running advisor server"`
	Explore  ExploreCmd       `cmd:"" help:"Browse the probability table interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("liarsdice"),
		kong.Description("Exact-probability solver for Liar's Dice bidding decisions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
