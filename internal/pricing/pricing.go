// Package pricing computes order money amounts. All arithmetic is done in
// decimals; rounding happens once, at the quote boundary, to two places.
package pricing

import (
	"github.com/shopspring/decimal"
)

// DefaultGSTRate is the tax rate applied when no override is configured.
var DefaultGSTRate = decimal.RequireFromString("0.18")

// Quote is the priced breakdown of a cart or order.
type Quote struct {
	Subtotal  decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal
}

// Calculate prices a subtotal at the given GST rate.
func Calculate(subtotal, gstRate decimal.Decimal) Quote {
	subtotal = subtotal.Round(2)
	gst := subtotal.Mul(gstRate).Round(2)

	return Quote{
		Subtotal:  subtotal,
		GSTAmount: gst,
		Total:     subtotal.Add(gst),
	}
}

// EffectiveRatePercent recovers the GST percentage from stored amounts, so a
// bill rendered long after checkout shows the rate that was actually charged
// rather than whatever the configured rate is today. Falls back to the
// default rate when the subtotal is zero.
func EffectiveRatePercent(subtotal, gstAmount decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return DefaultGSTRate.Mul(decimal.NewFromInt(100))
	}
	return gstAmount.Div(subtotal).Mul(decimal.NewFromInt(100))
}
