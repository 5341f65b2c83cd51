package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/techvault/storefront/internal/config"
	"github.com/techvault/storefront/internal/models"
)

// Calculator derives order totals from a line-item list. It is pure: it
// holds only the configured rate set, never mutates its input, and identical
// inputs always produce identical output.
type Calculator struct {
	taxRate       decimal.Decimal
	standardFee   decimal.Decimal
	expressFee    decimal.Decimal
	nextDayFee    decimal.Decimal
	freeThreshold decimal.Decimal
}

func NewCalculator(cfg config.Pricing) *Calculator {
	return &Calculator{
		taxRate:       decimal.NewFromFloat(cfg.TaxRate),
		standardFee:   decimal.NewFromFloat(cfg.StandardFee),
		expressFee:    decimal.NewFromFloat(cfg.ExpressFee),
		nextDayFee:    decimal.NewFromFloat(cfg.NextDayFee),
		freeThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold),
	}
}

// Totals computes subtotal, shipping, tax and grand total for the given
// shipping method. Standard shipping is free at or above the configured
// threshold; express and next-day are flat fees and never free. Unknown
// methods fall back to standard. An empty item list yields all zeros.
func (c *Calculator) Totals(items []models.LineItem, method models.ShippingMethod) models.OrderTotals {

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	var shipping decimal.Decimal

	switch {
	case len(items) == 0:
		shipping = decimal.Zero
	case method == models.ShippingExpress:
		shipping = c.expressFee
	case method == models.ShippingNextDay:
		shipping = c.nextDayFee
	case subtotal.GreaterThanOrEqual(c.freeThreshold):
		shipping = decimal.Zero
	default:
		shipping = c.standardFee
	}

	tax := subtotal.Mul(c.taxRate)
	total := subtotal.Add(shipping).Add(tax)

	// round-half-up on the cent boundary
	return models.OrderTotals{
		Subtotal: subtotal.Round(2),
		Shipping: shipping.Round(2),
		Tax:      tax.Round(2),
		Total:    total.Round(2),
	}
}
