// Package cmd implements the CLI application to manage a BIST portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/ecanik/bistfolio"
	"github.com/ecanik/bistfolio/renderer"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&priceCmd{},
	&rateCmd{},
	&holdingsCmd{},
	&gainsCmd{},
	&txCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var portfolioDirFlag = flag.String("d", "", "Path to the portfolio data directory (default $BIST_PORTFOLIO_DIR or .)")

// Logger is the warning sink for the accounting engine. A main package
// replaces it with a console logger; tests leave it disabled.
var Logger = zerolog.New(nil).Level(zerolog.Disabled)

// portfolioDir resolves the data directory. The flag wins over the
// environment; resolution is lazy so a .env loaded in main is honored.
func portfolioDir() string {
	if *portfolioDirFlag != "" {
		return *portfolioDirFlag
	}
	if dir := os.Getenv("BIST_PORTFOLIO_DIR"); dir != "" {
		return dir
	}
	return "."
}

// loadAll reads the complete portfolio state from the data directory.
func loadAll() (*bistfolio.Ledger, *bistfolio.PriceTable, bistfolio.Settings, error) {
	ledger, err := bistfolio.LoadLedger(portfolioDir())
	if err != nil {
		return nil, nil, bistfolio.Settings{}, err
	}
	prices, err := bistfolio.LoadPrices(portfolioDir())
	if err != nil {
		return nil, nil, bistfolio.Settings{}, err
	}
	settings, err := bistfolio.LoadSettings(portfolioDir())
	if err != nil {
		return nil, nil, bistfolio.Settings{}, err
	}
	return ledger, prices, settings, nil
}

// compute runs the accounting engine over the loaded state.
func compute(l *bistfolio.Ledger, p *bistfolio.PriceTable, s bistfolio.Settings) (*bistfolio.Portfolio, []bistfolio.RealizedGainLoss) {
	return bistfolio.Compute(l.Transactions(), p, s.UsdTryRate, Logger)
}

// appendTransaction validates and appends a transaction to the ledger file.
func appendTransaction(tx bistfolio.Transaction) subcommands.ExitStatus {
	if err := bistfolio.AppendTransaction(portfolioDir(), tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error appending transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded: %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. output is a pipe with no TERM).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseCurrency maps a -c flag value to a display currency.
func parseCurrency(c string) (string, error) {
	switch c {
	case "", "TRY", "try":
		return "TRY", nil
	case "USD", "usd":
		return "USD", nil
	}
	return "", fmt.Errorf("unknown currency %q: want TRY or USD", c)
}
