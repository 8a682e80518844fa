package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio"
)

type rateCmd struct {
	set   float64
	fetch bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show, set, or fetch the current USD/TRY rate" }
func (*rateCmd) Usage() string {
	return `rate [-set <rate> | -fetch]

  Without flags, prints the current USD/TRY rate. -set stores the given
  rate; -fetch pulls today's rate from the internet and stores it.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.set, "set", 0, "Store this USD/TRY rate")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch today's USD/TRY rate and store it")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.set > 0 && c.fetch {
		fmt.Fprintln(os.Stderr, "Error: -set and -fetch flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	settings, err := bistfolio.LoadSettings(portfolioDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.set > 0:
		settings.UsdTryRate = c.set
	case c.fetch:
		rate, err := bistfolio.FetchUsdTryRate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching USD/TRY rate: %v\n", err)
			return subcommands.ExitFailure
		}
		settings.UsdTryRate = rate
	default:
		fmt.Printf("USD/TRY: %.4f\n", settings.UsdTryRate)
		return subcommands.ExitSuccess
	}

	if err := bistfolio.SaveSettings(portfolioDir(), settings); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("USD/TRY set to %.4f\n", settings.UsdTryRate)
	return subcommands.ExitSuccess
}
