package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"

	"github.com/ecanik/bistfolio"
)

// run executes a command with the given arguments, the way a main would.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %s: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestBuySellPriceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	*portfolioDirFlag = dir
	t.Cleanup(func() { *portfolioDirFlag = "" })

	if got := run(t, &buyCmd{}, "-t", "THYAO", "-q", "10", "-p", "100", "-date", "2025-01-02", "-rate", "30"); got != subcommands.ExitSuccess {
		t.Fatalf("buy exited %v", got)
	}
	if got := run(t, &sellCmd{}, "-t", "THYAO", "-q", "4", "-p", "120", "-date", "2025-02-03", "-rate", "32"); got != subcommands.ExitSuccess {
		t.Fatalf("sell exited %v", got)
	}
	if got := run(t, &priceCmd{}, "-t", "THYAO", "-p", "130", "-date", "2025-02-04"); got != subcommands.ExitSuccess {
		t.Fatalf("price exited %v", got)
	}
	if got := run(t, &rateCmd{}, "-set", "40"); got != subcommands.ExitSuccess {
		t.Fatalf("rate exited %v", got)
	}

	ledger, prices, settings, err := loadAll()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Errorf("ledger has %d transactions, want 2", ledger.Len())
	}
	if price, ok := prices.Latest("THYAO"); !ok || price != 130 {
		t.Errorf("Latest(THYAO) = %v, %v", price, ok)
	}
	if settings.UsdTryRate != 40 {
		t.Errorf("UsdTryRate = %v, want 40", settings.UsdTryRate)
	}

	portfolio, gains := compute(ledger, prices, settings)
	if len(portfolio.Holdings) != 1 || portfolio.Holdings[0].Quantity != 6 {
		t.Errorf("holdings = %+v", portfolio.Holdings)
	}
	if len(gains) != 1 || gains[0].RealizedGain != 80 {
		t.Errorf("gains = %+v", gains)
	}
}

func TestBuyRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	*portfolioDirFlag = dir
	t.Cleanup(func() { *portfolioDirFlag = "" })

	cases := []struct {
		name string
		args []string
	}{
		{"no ticker", []string{"-q", "10", "-p", "100"}},
		{"no quantity", []string{"-t", "THYAO", "-p", "100"}},
		{"negative quantity", []string{"-t", "THYAO", "-q", "-1", "-p", "100"}},
		{"bad date", []string{"-t", "THYAO", "-q", "10", "-p", "100", "-date", "bogus"}},
	}
	for _, tc := range cases {
		if got := run(t, &buyCmd{}, tc.args...); got == subcommands.ExitSuccess {
			t.Errorf("buy with %s should fail", tc.name)
		}
	}

	ledger, err := bistfolio.LoadLedger(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("rejected commands must not write transactions, got %d", ledger.Len())
	}
}

func TestParseCurrency(t *testing.T) {
	for in, want := range map[string]string{"": "TRY", "TRY": "TRY", "try": "TRY", "USD": "USD", "usd": "USD"} {
		got, err := parseCurrency(in)
		if err != nil || got != want {
			t.Errorf("parseCurrency(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := parseCurrency("EUR"); err == nil {
		t.Error("parseCurrency(EUR) should fail")
	}
}
