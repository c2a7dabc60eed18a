package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Watch    WatchCmd         `cmd:"" help:"Watch the screen reader feed and show live advice"`
	Advise   AdviseCmd        `cmd:"" help:"One-shot advice for a hand"`
	Drill    DrillCmd         `cmd:"" help:"Practice card counting against a simulated shoe"`
	Simulate SimulateCmd      `cmd:"" help:"Play simulated rounds and report count/bet statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("edgecount"),
		kong.Description("Real-time blackjack strategy and card counting advisor"),
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
