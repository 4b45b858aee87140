package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"grafica-be/internal/logger"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	GetAll(ctx context.Context) ([]*Product, error)
	Create(ctx context.Context, p *Product) error
	UpdatePricing(ctx context.Context, id string, rate decimal.Decimal, minPrice decimal.Decimal, cfg *PricingConfig) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, name, category, base_price_per_m2,
	is_fixed_price, min_price, pricing_config,
	created_at, updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	var rawCfg []byte

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.BasePricePerM2,
		&p.IsFixedPrice,
		&p.MinPrice,
		&rawCfg,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rawCfg) > 0 {
		var cfg PricingConfig
		if err := json.Unmarshal(rawCfg, &cfg); err != nil {
			return nil, fmt.Errorf("decode pricing config for product %s: %w", p.ID, err)
		}
		if len(cfg.VariantOptions) > 0 || len(cfg.PricesByVariant) > 0 {
			p.Pricing = &cfg
		}
	}

	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	// A config that violates its own invariant means someone edited the
	// row outside the service; better to refuse it than misquote.
	if err := p.Pricing.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("product_id", p.ID),
	)

	rawCfg, err := marshalConfig(p.Pricing)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO products (
			id, name, category, base_price_per_m2,
			is_fixed_price, min_price, pricing_config
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Name,
		p.Category,
		p.BasePricePerM2,
		p.IsFixedPrice,
		p.MinPrice,
		rawCfg,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		log.Warn("product id already taken")
		return ErrProductExists
	}
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return err
	}

	log.Info("product created")
	return nil
}

// UpdatePricing replaces the rate, floor and variant config in one write.
// Orders already placed keep their stamped totals; edits are forward-only.
func (r *repository) UpdatePricing(ctx context.Context, id string, rate decimal.Decimal, minPrice decimal.Decimal, cfg *PricingConfig) (bool, error) {
	rawCfg, err := marshalConfig(cfg)
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET base_price_per_m2 = $1,
		    min_price = $2,
		    pricing_config = $3,
		    updated_at = NOW()
		WHERE id = $4
	`, rate, minPrice, rawCfg, id)
	if err != nil {
		return false, err
	}

	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func marshalConfig(cfg *PricingConfig) ([]byte, error) {
	if cfg == nil {
		return nil, nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode pricing config: %w", err)
	}
	return raw, nil
}
