package product

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductExists        = errors.New("product already exists")
	ErrInvalidPricingConfig = errors.New("invalid pricing config")
	ErrInvalidProduct       = errors.New("invalid product")
)
