// Package renderer turns portfolio reports into markdown strings.
package renderer

import (
	"strconv"

	"github.com/Rhymond/go-money"
)

// Display currencies supported by the report renderers.
const (
	TRY = money.TRY
	USD = money.USD
)

// formatMoney formats an amount in the given currency, e.g. "₺1,234.50".
func formatMoney(v float64, currency string) string {
	return money.NewFromFloat(v, currency).Display()
}

// formatOptMoney formats an optional amount; unknown values render as "-".
func formatOptMoney(v *float64, currency string) string {
	if v == nil {
		return "-"
	}
	return formatMoney(*v, currency)
}

// formatSignedMoney is formatMoney with an explicit "+" on gains, so gains
// and losses read apart at a glance in the tables.
func formatSignedMoney(v float64, currency string) string {
	if v > 0 {
		return "+" + formatMoney(v, currency)
	}
	return formatMoney(v, currency)
}

func formatOptSignedMoney(v *float64, currency string) string {
	if v == nil {
		return "-"
	}
	return formatSignedMoney(*v, currency)
}

// formatQuantity renders a share count with no trailing zeros.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPercent renders a signed percentage with two decimals.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func formatOptPercent(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatPercent(*v)
}
