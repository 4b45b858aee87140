package pricing

import (
	"testing"

	"grafica-be/internal/product"
	"grafica-be/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func lona() *product.Product {
	return &product.Product{
		ID:             "lona",
		Name:           "Lona",
		BasePricePerM2: dec("50"),
		MinPrice:       dec("20"),
	}
}

func TestComputeQuote_VariablePricing(t *testing.T) {
	t.Run("Lona 250x150 qty 2", func(t *testing.T) {
		q, err := ComputeQuote(lona(), 250, 150, 2, nil)
		require.NoError(t, err)

		assert.Equal(t, "3.75", q.AreaM2.String())
		assert.Equal(t, "187.50", q.UnitPrice.StringFixed(2))
		assert.Equal(t, "375.00", q.Total.StringFixed(2))
		assert.False(t, q.FloorApplied)
	})

	t.Run("MinPrice floor applies to tiny jobs", func(t *testing.T) {
		// 10x10cm = 0.01 m2 -> 0.50 at base rate, floored to 20
		q, err := ComputeQuote(lona(), 10, 10, 1, nil)
		require.NoError(t, err)

		assert.True(t, q.FloorApplied)
		assert.Equal(t, "20.00", q.Total.StringFixed(2))
	})

	t.Run("Rounding happens once on the total", func(t *testing.T) {
		p := &product.Product{
			BasePricePerM2: dec("33.335"),
			MinPrice:       dec("0"),
		}
		// 1 m2, unit = 33.335; per-unit rounding would give 100.02 or 100.005->100.01
		q, err := ComputeQuote(p, 100, 100, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, "100.01", q.Total.StringFixed(2))
	})
}

func TestComputeQuote_FixedPricing(t *testing.T) {
	card := &product.Product{
		ID:           "cartao",
		Name:         "Cartão de Visita",
		IsFixedPrice: true,
		MinPrice:     dec("90"),
	}

	t.Run("Quantity multiplies fixed price", func(t *testing.T) {
		total, err := ComputePrice(card, 0, 0, 3, nil)
		require.NoError(t, err)
		assert.Equal(t, "270.00", total.StringFixed(2))
	})

	t.Run("Dimensions are ignored", func(t *testing.T) {
		a, err := ComputePrice(card, 10, 10, 1, nil)
		require.NoError(t, err)
		b, err := ComputePrice(card, 900, 900, 1, nil)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("Quantity still validated", func(t *testing.T) {
		_, err := ComputePrice(card, 10, 10, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestComputeQuote_InvalidInputs(t *testing.T) {
	t.Run("Zero width", func(t *testing.T) {
		_, err := ComputePrice(lona(), 0, 150, 1, nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Zero height", func(t *testing.T) {
		_, err := ComputePrice(lona(), 250, 0, 1, nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Negative height", func(t *testing.T) {
		_, err := ComputePrice(lona(), 250, -5, 1, nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		_, err := ComputePrice(lona(), 250, 150, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Negative quantity", func(t *testing.T) {
		_, err := ComputePrice(lona(), 250, 150, -1, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestComputeQuote_Variants(t *testing.T) {
	acrylic := &product.Product{
		ID:             "acrilico",
		Name:           "Acrílico",
		BasePricePerM2: dec("300"),
		MinPrice:       dec("50"),
		Pricing: &product.PricingConfig{
			PricesByVariant: map[string]decimal.Decimal{"3mm": dec("500")},
			VariantOptions:  []string{"1mm", "2mm", "3mm"},
		},
	}

	t.Run("Override rate used for configured variant", func(t *testing.T) {
		q, err := ComputeQuote(acrylic, 100, 100, 1, utils.StrPtr("3mm"))
		require.NoError(t, err)

		assert.Equal(t, "500", q.EffectiveRate.String())
		assert.Equal(t, "500.00", q.Total.StringFixed(2))
	})

	t.Run("Option without override falls back to base rate", func(t *testing.T) {
		q, err := ComputeQuote(acrylic, 100, 100, 1, utils.StrPtr("1mm"))
		require.NoError(t, err)

		assert.Equal(t, "300", q.EffectiveRate.String())
	})

	t.Run("Unknown variant is a hard error", func(t *testing.T) {
		_, err := ComputeQuote(acrylic, 100, 100, 1, utils.StrPtr("9mm"))
		assert.ErrorIs(t, err, ErrUnknownVariant)
	})

	t.Run("Variant on product without options is a hard error", func(t *testing.T) {
		_, err := ComputeQuote(lona(), 100, 100, 1, utils.StrPtr("3mm"))
		assert.ErrorIs(t, err, ErrUnknownVariant)
	})

	t.Run("Floor still applies over variant rate", func(t *testing.T) {
		q, err := ComputeQuote(acrylic, 10, 10, 1, utils.StrPtr("3mm"))
		require.NoError(t, err)

		assert.True(t, q.FloorApplied)
		assert.Equal(t, "50.00", q.Total.StringFixed(2))
	})
}
