package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "category", "base_price_per_m2",
		"is_fixed_price", "min_price", "pricing_config",
		"created_at", "updated_at",
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success without config", func(t *testing.T) {
		rows := productRows().AddRow(
			"lona", "Lona", "banners", "50.00",
			false, "20.00", nil,
			time.Now(), time.Now(),
		)
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs("lona").
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "lona")
		require.NoError(t, err)
		assert.Equal(t, "Lona", p.Name)
		assert.Nil(t, p.Pricing)
		assert.Equal(t, "50", p.BasePricePerM2.String())
	})

	t.Run("Success with variant config", func(t *testing.T) {
		cfg := `{"prices_by_variant":{"3mm":"500"},"variant_options":["1mm","2mm","3mm"]}`
		rows := productRows().AddRow(
			"acrilico", "Acrílico", "rigid", "300.00",
			false, "50.00", []byte(cfg),
			time.Now(), time.Now(),
		)
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs("acrilico").
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "acrilico")
		require.NoError(t, err)
		require.NotNil(t, p.Pricing)
		assert.Equal(t, []string{"1mm", "2mm", "3mm"}, p.Pricing.VariantOptions)

		rate, ok := p.Pricing.VariantRate("3mm")
		assert.True(t, ok)
		assert.Equal(t, "500", rate.String())
	})

	t.Run("Config violating its invariant rejected at load", func(t *testing.T) {
		cfg := `{"prices_by_variant":{"9mm":"700"},"variant_options":["1mm"]}`
		rows := productRows().AddRow(
			"acrilico", "Acrílico", "rigid", "300.00",
			false, "50.00", []byte(cfg),
			time.Now(), time.Now(),
		)
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs("acrilico").
			WillReturnRows(rows)

		_, err := repo.GetByID(ctx, "acrilico")
		assert.ErrorIs(t, err, ErrInvalidPricingConfig)
	})

	t.Run("Missing product", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs("nope").
			WillReturnRows(productRows())

		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	rows := productRows().
		AddRow("lona", "Lona", "banners", "50.00", false, "20.00", nil, time.Now(), time.Now()).
		AddRow("cartao", "Cartão", "paper", "0.00", true, "90.00", nil, time.Now(), time.Now())

	mock.ExpectQuery(`SELECT .* FROM products ORDER BY category, name`).
		WillReturnRows(rows)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.True(t, products[1].IsFixedPrice)
}

func TestRepository_UpdatePricing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Applied", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products\s+SET base_price_per_m2 = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.UpdatePricing(ctx, "lona", dec("60"), dec("25"), nil)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("Missing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE products\s+SET base_price_per_m2 = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.UpdatePricing(ctx, "nope", dec("60"), dec("25"), nil)
		require.NoError(t, err)
		assert.False(t, applied)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	p := &Product{
		ID:             "lona",
		Name:           "Lona",
		Category:       "banners",
		BasePricePerM2: dec("50"),
		MinPrice:       dec("20"),
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO products").
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.Create(ctx, p))
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO products").
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.Create(ctx, p))
	})
}
