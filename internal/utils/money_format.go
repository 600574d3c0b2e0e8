package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fractional digits shown for currency amounts.
const DisplayPrecision = 2

// FormatAmount rounds an amount for display. Rounding is half away from zero and must only
// be applied to final values, never to intermediate sums.
// Example: 12.345 returns "12.35", -0.005 returns "-0.01"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatOptionalAmount formats a nullable quantity or price.
func FormatOptionalAmount(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	s := FormatAmount(*amount)
	return &s
}
