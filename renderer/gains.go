package renderer

import (
	"fmt"
	"strings"

	"github.com/ecanik/bistfolio"
)

// GainsMarkdown renders realized gains as a markdown table in the requested
// display currency. In USD view, sells whose lots lacked exchange rates show
// "-" for every money column.
func GainsMarkdown(gains []bistfolio.RealizedGainLoss, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Realized Gains (%s)\n\n", currency)

	if len(gains) == 0 {
		fmt.Fprintln(&b, "No realized gains.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Ticker | Quantity | Sell Price | Cost Basis | Net Proceeds | Realized |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")

	var total float64
	var totalUsd float64
	for _, g := range gains {
		if currency == USD {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				g.SellDate,
				g.Ticker,
				formatQuantity(g.Quantity),
				"-", // sell price is quoted in TRY only
				formatOptMoney(g.CostBasisUsd, USD),
				formatOptMoney(g.NetSellProceedsUsd, USD),
				formatOptSignedMoney(g.RealizedGainUsd, USD),
			)
			if g.RealizedGainUsd != nil {
				totalUsd += *g.RealizedGainUsd
			}
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			g.SellDate,
			g.Ticker,
			formatQuantity(g.Quantity),
			formatMoney(g.SellPrice, TRY),
			formatMoney(g.CostBasis, TRY),
			formatMoney(g.NetSellProceeds, TRY),
			formatSignedMoney(g.RealizedGain, TRY),
		)
		total += g.RealizedGain
	}

	if currency == USD {
		fmt.Fprintf(&b, "| **Total** | | | | | | **%s** |\n", formatSignedMoney(totalUsd, USD))
	} else {
		fmt.Fprintf(&b, "| **Total** | | | | | | **%s** |\n", formatSignedMoney(total, TRY))
	}
	return b.String()
}
