package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvault/storefront/internal/config"
	"github.com/techvault/storefront/internal/models"
	"github.com/techvault/storefront/internal/pricing"
)

func defaultRates() config.Pricing {
	return config.Pricing{
		TaxRate:               0.085,
		StandardFee:           9.99,
		ExpressFee:            19.99,
		NextDayFee:            29.99,
		FreeShippingThreshold: 100,
	}
}

func item(price string, quantity int) models.LineItem {
	return models.LineItem{
		ProductID: int64(quantity), // unused by the calculator
		Product:   models.Product{Price: decimal.RequireFromString(price)},
		Quantity:  quantity,
	}
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

func TestTotals(t *testing.T) {
	calc := pricing.NewCalculator(defaultRates())

	t.Run("Success - Empty Cart Yields All Zeros", func(t *testing.T) {
		totals := calc.Totals(nil, models.ShippingStandard)

		assertMoney(t, "0", totals.Subtotal)
		assertMoney(t, "0", totals.Shipping)
		assertMoney(t, "0", totals.Tax)
		assertMoney(t, "0", totals.Total)
	})

	t.Run("Success - Free Shipping At Exactly The Threshold", func(t *testing.T) {
		totals := calc.Totals([]models.LineItem{item("100.00", 1)}, models.ShippingStandard)

		assertMoney(t, "0", totals.Shipping)
	})

	t.Run("Success - Standard Fee Below The Threshold", func(t *testing.T) {
		totals := calc.Totals([]models.LineItem{item("99.99", 1)}, models.ShippingStandard)

		assertMoney(t, "9.99", totals.Shipping)
	})

	t.Run("Success - Express Is Never Free", func(t *testing.T) {
		totals := calc.Totals([]models.LineItem{item("250.00", 2)}, models.ShippingExpress)

		assertMoney(t, "19.99", totals.Shipping)
	})

	t.Run("Success - Next-Day Overrides The Threshold", func(t *testing.T) {
		totals := calc.Totals([]models.LineItem{item("500.00", 1)}, models.ShippingNextDay)

		assertMoney(t, "29.99", totals.Shipping)
	})

	t.Run("Success - Unknown Method Falls Back To Standard", func(t *testing.T) {
		totals := calc.Totals([]models.LineItem{item("50.00", 1)}, models.ShippingMethod("drone"))

		assertMoney(t, "9.99", totals.Shipping)
	})

	t.Run("Success - Tax Rounded To Cents", func(t *testing.T) {
		totals := calc.Totals([]models.LineItem{item("200.00", 1)}, models.ShippingStandard)

		// 200 * 8.5% = 17.00
		assertMoney(t, "17.00", totals.Tax)
		assertMoney(t, "217.00", totals.Total)
	})

	t.Run("Success - Rounds Half Up On The Cent", func(t *testing.T) {
		// subtotal 10.30, tax 0.8755 -> 0.88
		totals := calc.Totals([]models.LineItem{item("10.30", 1)}, models.ShippingStandard)

		assertMoney(t, "0.88", totals.Tax)
		assertMoney(t, "21.17", totals.Total)
	})

	t.Run("Success - Multi-Item Subtotal", func(t *testing.T) {
		items := []models.LineItem{
			item("49.99", 3),
			item("15.00", 1),
		}

		totals := calc.Totals(items, models.ShippingStandard)

		// 49.99*3 + 15.00 = 164.97, above threshold so shipping is free
		assertMoney(t, "164.97", totals.Subtotal)
		assertMoney(t, "0", totals.Shipping)
		assertMoney(t, "14.02", totals.Tax)
		assertMoney(t, "178.99", totals.Total)
	})

	t.Run("Success - Idempotent And Side-Effect-Free", func(t *testing.T) {
		items := []models.LineItem{item("33.33", 2), item("9.99", 1)}
		before := make([]models.LineItem, len(items))
		copy(before, items)

		first := calc.Totals(items, models.ShippingExpress)
		second := calc.Totals(items, models.ShippingExpress)

		require.Equal(t, first, second)
		assert.Equal(t, before, items)
	})

	t.Run("Success - Custom Rate Set", func(t *testing.T) {
		calc := pricing.NewCalculator(config.Pricing{
			TaxRate:               0.08,
			StandardFee:           15.99,
			ExpressFee:            25,
			NextDayFee:            40,
			FreeShippingThreshold: 150,
		})

		totals := calc.Totals([]models.LineItem{item("120.00", 1)}, models.ShippingStandard)

		assertMoney(t, "15.99", totals.Shipping)
		assertMoney(t, "9.60", totals.Tax)
		assertMoney(t, "145.59", totals.Total)
	})
}
