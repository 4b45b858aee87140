// Package pricing computes quote totals for print products. It is pure:
// no persistence, no shared state, safe for concurrent use.
package pricing

import (
	"errors"

	"grafica-be/internal/product"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDimension = errors.New("width and height must be greater than zero")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrUnknownVariant   = errors.New("selected variant is not an option for this product")
)

// Quote is the full breakdown of a price calculation. The calculator
// screens show area and unit price alongside the total.
type Quote struct {
	AreaM2        decimal.Decimal
	EffectiveRate decimal.Decimal
	UnitPrice     decimal.Decimal
	FloorApplied  bool
	Total         decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeQuote prices a product for the given dimensions, quantity and
// optional variant selection. Dimensions arrive in centimeters; rates
// are per square meter. Rounding happens once, on the final total, to
// avoid compounding per-unit rounding error across quantity.
//
// Fixed-price products charge MinPrice per unit regardless of area,
// and always multiply by quantity (same policy as variable pricing).
func ComputeQuote(p *product.Product, widthCm, heightCm float64, quantity int, selectedVariant *string) (*Quote, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	qty := decimal.NewFromInt(int64(quantity))

	if p.IsFixedPrice {
		return &Quote{
			UnitPrice: p.MinPrice.Round(2),
			Total:     p.MinPrice.Mul(qty).Round(2),
		}, nil
	}

	if widthCm <= 0 || heightCm <= 0 {
		return nil, ErrInvalidDimension
	}

	rate := p.BasePricePerM2
	if selectedVariant != nil && *selectedVariant != "" {
		// No silent fallback: a variant outside the configured options
		// is a configuration or caller bug and must surface.
		if !p.Pricing.HasOption(*selectedVariant) {
			return nil, ErrUnknownVariant
		}
		if override, ok := p.Pricing.VariantRate(*selectedVariant); ok {
			rate = override
		}
	}

	area := decimal.NewFromFloat(widthCm).
		Div(hundred).
		Mul(decimal.NewFromFloat(heightCm).Div(hundred))

	unit := area.Mul(rate)
	floorApplied := false
	if unit.LessThan(p.MinPrice) {
		unit = p.MinPrice
		floorApplied = true
	}

	return &Quote{
		AreaM2:        area,
		EffectiveRate: rate,
		UnitPrice:     unit.Round(2),
		FloorApplied:  floorApplied,
		Total:         unit.Mul(qty).Round(2),
	}, nil
}

// ComputePrice returns only the rounded total.
func ComputePrice(p *product.Product, widthCm, heightCm float64, quantity int, selectedVariant *string) (decimal.Decimal, error) {
	q, err := ComputeQuote(p, widthCm, heightCm, quantity, selectedVariant)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Total, nil
}
