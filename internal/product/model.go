package product

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PricingConfig holds the per-variant overrides for materials whose
// rate depends on a sub-selection (thickness, finish subtype).
// An option without an override falls back to the product's base rate.
type PricingConfig struct {
	PricesByVariant map[string]decimal.Decimal `json:"prices_by_variant,omitempty"`
	VariantOptions  []string                   `json:"variant_options,omitempty"`
}

func (c *PricingConfig) HasOption(key string) bool {
	if c == nil {
		return false
	}
	for _, opt := range c.VariantOptions {
		if opt == key {
			return true
		}
	}
	return false
}

// VariantRate returns the override rate for key, if one exists.
func (c *PricingConfig) VariantRate(key string) (decimal.Decimal, bool) {
	if c == nil || c.PricesByVariant == nil {
		return decimal.Zero, false
	}
	rate, ok := c.PricesByVariant[key]
	return rate, ok
}

// Validate rejects configs whose override keys are not listed as options.
func (c *PricingConfig) Validate() error {
	if c == nil {
		return nil
	}
	for key := range c.PricesByVariant {
		if !c.HasOption(key) {
			return fmt.Errorf("%w: price override %q is not a variant option", ErrInvalidPricingConfig, key)
		}
	}
	return nil
}

type Product struct {
	ID             string
	Name           string
	Category       string
	BasePricePerM2 decimal.Decimal
	IsFixedPrice   bool
	MinPrice       decimal.Decimal
	Pricing        *PricingConfig
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
