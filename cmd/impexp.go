package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio"
)

// --- Export Command ---

type exportCmd struct {
	what   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions, prices, or a full backup" }
func (*exportCmd) Usage() string {
	return `export -what transactions|prices|backup [-o <file>]

  Writes transactions or prices as CSV, or the full portfolio as a JSON
  backup. Output goes to stdout unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "transactions", "What to export: transactions, prices, or backup")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, prices, _, err := loadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	switch c.what {
	case "transactions":
		err = bistfolio.ExportTransactionsCSV(w, ledger)
	case "prices":
		err = bistfolio.ExportPricesCSV(w, prices)
	case "backup":
		err = bistfolio.ExportBackup(w, ledger, prices)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown export target %q\n", c.what)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct {
	what string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions, prices, or a full backup" }
func (*importCmd) Usage() string {
	return `import -what transactions|prices|backup [<file>]

  Reads CSV transactions or prices, or a JSON backup, from the given file
  (stdin if omitted) and replaces the corresponding portfolio data. The
  whole input is validated first: a single bad row aborts the import.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.what, "what", "transactions", "What to import: transactions, prices, or backup")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	switch c.what {
	case "transactions":
		ledger, err := bistfolio.ImportTransactionsCSV(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing transactions: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := bistfolio.SaveLedger(portfolioDir(), ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d transactions\n", ledger.Len())
	case "prices":
		prices, err := bistfolio.ImportPricesCSV(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing prices: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := bistfolio.SavePrices(portfolioDir(), prices); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Imported prices")
	case "backup":
		ledger, prices, err := bistfolio.ImportBackup(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing backup: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := bistfolio.SaveLedger(portfolioDir(), ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := bistfolio.SavePrices(portfolioDir(), prices); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported backup: %d transactions\n", ledger.Len())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown import target %q\n", c.what)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
