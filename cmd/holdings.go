package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio/renderer"
)

type holdingsCmd struct {
	currency string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "report current positions and their valuation" }
func (*holdingsCmd) Usage() string {
	return `holdings [-c TRY|USD]

  Computes the current positions from the transaction history and values
  them at the latest recorded prices.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "TRY", "Display currency (TRY or USD)")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	portfolio, _ := compute(ledger, prices, settings)
	printMarkdown(renderer.HoldingsMarkdown(portfolio, currency))
	return subcommands.ExitSuccess
}
