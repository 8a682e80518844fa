package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio/renderer"
)

type gainsCmd struct {
	currency string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "report realized gains from past sells" }
func (*gainsCmd) Usage() string {
	return `gains [-c TRY|USD]

  Lists the realized gain of every sell, matched FIFO against the buy lots
  that preceded it.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "TRY", "Display currency (TRY or USD)")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currency, err := parseCurrency(c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, prices, settings, err := loadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	_, gains := compute(ledger, prices, settings)
	printMarkdown(renderer.GainsMarkdown(gains, currency))
	return subcommands.ExitSuccess
}
