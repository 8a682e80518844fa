package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio"
)

type priceCmd struct {
	date   string
	ticker string
	price  float64
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "record a market price for a ticker" }
func (*priceCmd) Usage() string {
	return `price -t <ticker> -p <price> [-date <date>]

  Records a price observation. The holdings report values each position at
  the most recent recorded price.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", bistfolio.Today().String(), "Observation date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Stock ticker")
	f.Float64Var(&c.price, "p", 0, "Price per share in TRY")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := bistfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	prices, err := bistfolio.LoadPrices(portfolioDir())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prices.Add(c.ticker, day, c.price)
	if err := bistfolio.SavePrices(portfolioDir(), prices); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s at %.2f on %s\n", c.ticker, c.price, day)
	return subcommands.ExitSuccess
}
