package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio"
)

// --- Buy Command ---

type buyCmd struct {
	date       string
	ticker     string
	quantity   float64
	price      float64
	rate       float64
	commission float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `buy -t <ticker> -q <quantity> -p <price> [-date <date>] [-rate <usd/try>] [-commission <rate>]

  Records a purchase. The cost of the resulting lot is quantity * price,
  increased by the commission rate when one is given.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", bistfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Stock ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share in TRY")
	f.Float64Var(&c.rate, "rate", 0, "USD/TRY exchange rate on the transaction day")
	f.Float64Var(&c.commission, "commission", 0, "Commission as a fraction, e.g. 0.002 for 0.2%")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := bistfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bistfolio.NewBuy(day, c.ticker, c.quantity, c.price).
		WithRate(c.rate).
		WithCommission(c.commission)
	return appendTransaction(tx)
}

// --- Sell Command ---

type sellCmd struct {
	date       string
	ticker     string
	quantity   float64
	price      float64
	rate       float64
	commission float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `sell -t <ticker> -q <quantity> -p <price> [-date <date>] [-rate <usd/try>] [-commission <rate>]

  Records a sale. The sale is matched against the oldest lots of the ticker
  first; see 'bist topic fifo'.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", bistfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Stock ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share in TRY")
	f.Float64Var(&c.rate, "rate", 0, "USD/TRY exchange rate on the transaction day")
	f.Float64Var(&c.commission, "commission", 0, "Commission as a fraction, e.g. 0.002 for 0.2%")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := bistfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := bistfolio.NewSell(day, c.ticker, c.quantity, c.price).
		WithRate(c.rate).
		WithCommission(c.commission)
	return appendTransaction(tx)
}
