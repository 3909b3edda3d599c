package cart

import (
	"github.com/shopspring/decimal"

	"cookiestore/models"
)

// Order pricing rules: flat-rate shipping waived once the subtotal reaches
// the free-shipping threshold, plus 8% tax on the subtotal.
var (
	freeShippingAt = decimal.NewFromInt(50)
	shippingFlat   = decimal.RequireFromString("5.99")
	taxRate        = decimal.RequireFromString("0.08")
)

// Totals derives the order summary from the given cart lines. An empty cart
// yields all-zero totals. Shipping is free at a subtotal of exactly 50.00
// and above, charged below it.
func Totals(lines []models.CartLine) models.OrderTotals {
	if len(lines) == 0 {
		return models.OrderTotals{
			Subtotal: decimal.Zero,
			Shipping: decimal.Zero,
			Tax:      decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	shipping := shippingFlat
	if subtotal.GreaterThanOrEqual(freeShippingAt) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate)

	return models.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
