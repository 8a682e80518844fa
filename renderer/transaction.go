package renderer

import (
	"fmt"
	"strings"

	"github.com/ecanik/bistfolio"
)

// Transaction renders a transaction as a one-line summary.
func Transaction(tx bistfolio.Transaction) string {
	verb := "Bought"
	if tx.Type == bistfolio.Sell {
		verb = "Sold"
	}
	s := fmt.Sprintf("%s %s %s of %s at %s", verb, tx.Date, formatQuantity(tx.Quantity), tx.Ticker, formatMoney(tx.Price, TRY))
	if tx.UsdTryRate > 0 {
		s += fmt.Sprintf(" (rate %.4f)", tx.UsdTryRate)
	}
	return s
}

// TransactionsMarkdown renders the transaction log as a markdown table,
// oldest first.
func TransactionsMarkdown(txs []bistfolio.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")

	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Type | Ticker | Quantity | Price | USD/TRY | Commission | ID |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|:---|")

	for _, tx := range txs {
		rate := "-"
		if tx.UsdTryRate > 0 {
			rate = fmt.Sprintf("%.4f", tx.UsdTryRate)
		}
		commission := "-"
		if tx.CommissionRate > 0 {
			commission = formatPercent(tx.CommissionRate * 100)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Type,
			tx.Ticker,
			formatQuantity(tx.Quantity),
			formatMoney(tx.Price, TRY),
			rate,
			commission,
			tx.ID,
		)
	}
	return b.String()
}
