package product

import (
	"context"
	"fmt"
	"strings"

	"grafica-be/internal/logger"
	"grafica-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	CreateProduct(ctx context.Context, input NewProductInput) (*Product, error)
	UpdateProductPricing(ctx context.Context, id string, input UpdatePricingInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type NewProductInput struct {
	Name           string
	Category       string
	BasePricePerM2 decimal.Decimal
	IsFixedPrice   bool
	MinPrice       decimal.Decimal
	Pricing        *PricingConfig
}

type UpdatePricingInput struct {
	BasePricePerM2 decimal.Decimal
	MinPrice       decimal.Decimal
	Pricing        *PricingConfig
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) CreateProduct(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if err := validateRates(input.BasePricePerM2, input.MinPrice, input.IsFixedPrice); err != nil {
		return nil, err
	}
	if err := input.Pricing.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		ID:             utils.Slugify(input.Name),
		Name:           strings.TrimSpace(input.Name),
		Category:       strings.TrimSpace(input.Category),
		BasePricePerM2: input.BasePricePerM2,
		IsFixedPrice:   input.IsFixedPrice,
		MinPrice:       input.MinPrice,
		Pricing:        input.Pricing,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("category", p.Category),
	)

	return p, nil
}

func (s *service) UpdateProductPricing(ctx context.Context, id string, input UpdatePricingInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProductPricing"),
		zap.String("product_id", id),
	)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateRates(input.BasePricePerM2, input.MinPrice, current.IsFixedPrice); err != nil {
		return nil, err
	}
	if err := input.Pricing.Validate(); err != nil {
		return nil, err
	}

	applied, err := s.repo.UpdatePricing(ctx, id, input.BasePricePerM2, input.MinPrice, input.Pricing)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrProductNotFound
	}

	log.Info("product pricing updated",
		zap.String("base_rate", input.BasePricePerM2.String()),
		zap.String("min_price", input.MinPrice.String()),
	)

	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	applied, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !applied {
		return ErrProductNotFound
	}
	return nil
}

func validateRates(rate, minPrice decimal.Decimal, isFixed bool) error {
	if minPrice.IsNegative() {
		return fmt.Errorf("%w: min price cannot be negative", ErrInvalidProduct)
	}
	if isFixed {
		if minPrice.IsZero() {
			return fmt.Errorf("%w: fixed-price products need a positive min price", ErrInvalidProduct)
		}
		return nil
	}
	if !rate.IsPositive() {
		return fmt.Errorf("%w: base price per m2 must be positive", ErrInvalidProduct)
	}
	return nil
}
