package renderer

import (
	"fmt"
	"strings"

	"github.com/ecanik/bistfolio"
)

// HoldingsMarkdown renders the current holdings as a markdown table in the
// requested display currency (TRY or USD). Values the engine could not
// compute, a missing price or a lot without an exchange rate, show as "-".
func HoldingsMarkdown(p *bistfolio.Portfolio, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings (%s)\n\n", currency)

	if len(p.Holdings) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Quantity | Avg Cost | Total Cost | Price | Market Value | Unrealized | Unrealized % |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")

	for _, h := range p.Holdings {
		if currency == USD {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				h.Ticker,
				formatQuantity(h.Quantity),
				formatOptMoney(h.AverageCostUsd, USD),
				formatOptMoney(h.TotalCostUsd, USD),
				"-", // prices are quoted in TRY only
				formatOptMoney(h.MarketValueUsd, USD),
				formatOptSignedMoney(h.UnrealizedGainLossUsd, USD),
				"-",
			)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Ticker,
			formatQuantity(h.Quantity),
			formatMoney(h.AverageCost, TRY),
			formatMoney(h.TotalCost, TRY),
			formatOptMoney(h.CurrentPrice, TRY),
			formatOptMoney(h.MarketValue, TRY),
			formatOptSignedMoney(h.UnrealizedGainLoss, TRY),
			formatOptPercent(h.UnrealizedGainLossPercent),
		)
	}

	if currency == USD {
		fmt.Fprintf(&b, "| **Total** | | | **%s** | | **%s** | **%s** | |\n",
			formatMoney(p.TotalCostUsd, USD),
			formatMoney(p.TotalMarketValueUsd, USD),
			formatSignedMoney(p.TotalUnrealizedGainLossUsd, USD),
		)
	} else {
		fmt.Fprintf(&b, "| **Total** | | | **%s** | | **%s** | **%s** | **%s** |\n",
			formatMoney(p.TotalCost, TRY),
			formatMoney(p.TotalMarketValue, TRY),
			formatSignedMoney(p.TotalUnrealizedGainLoss, TRY),
			formatPercent(p.TotalUnrealizedGainLossPercent),
		)
	}
	return b.String()
}
