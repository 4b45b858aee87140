package order

import (
	"context"
	"database/sql"
	"errors"

	"grafica-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	// UpdateStatus applies the change only when the row still holds the
	// expected status; the bool reports whether the write landed.
	UpdateStatus(ctx context.Context, id string, from, to OrderStatus) (bool, error)
	UpdateDetails(ctx context.Context, id string, in UpdateDetailsInput) (bool, error)
	ListByStatuses(ctx context.Context, statuses []OrderStatus) ([]*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_id", o.ID),
		zap.Int("file_count", len(o.FilePaths)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, product_id, product_name,
			client_name, client_phone, client_document,
			width_cm, height_cm, quantity,
			selected_variant, finishing, instructions,
			total_price, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		o.ID,
		o.ProductID,
		o.ProductName,
		o.ClientName,
		o.ClientPhone,
		o.ClientDocument,
		o.WidthCm,
		o.HeightCm,
		o.Quantity,
		o.SelectedVariant,
		o.Finishing,
		o.Instructions,
		o.TotalPrice,
		o.Status,
		o.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i, path := range o.FilePaths {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_files (order_id, path, position)
			VALUES ($1,$2,$3)
		`, o.ID, path, i)
		if err != nil {
			log.Error("failed to insert order file",
				zap.Int("position", i),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order persisted")
	return nil
}

const orderColumns = `
	id, product_id, product_name,
	client_name, client_phone, client_document,
	width_cm, height_cm, quantity,
	selected_variant, finishing, instructions,
	total_price, status, created_at, updated_at
`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID,
		&o.ProductID,
		&o.ProductName,
		&o.ClientName,
		&o.ClientPhone,
		&o.ClientDocument,
		&o.WidthCm,
		&o.HeightCm,
		&o.Quantity,
		&o.SelectedVariant,
		&o.Finishing,
		&o.Instructions,
		&o.TotalPrice,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT path FROM order_files
		WHERE order_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		o.FilePaths = append(o.FilePaths, path)
	}

	return o, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id string, from, to OrderStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		  AND status = $3
	`, to, id, from)
	if err != nil {
		return false, err
	}

	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *repository) UpdateDetails(ctx context.Context, id string, in UpdateDetailsInput) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET client_name = COALESCE($1, client_name),
		    client_phone = COALESCE($2, client_phone),
		    client_document = COALESCE($3, client_document),
		    instructions = COALESCE($4, instructions),
		    finishing = COALESCE($5, finishing),
		    updated_at = NOW()
		WHERE id = $6
	`,
		in.ClientName,
		in.ClientPhone,
		in.ClientDocument,
		in.Instructions,
		in.Finishing,
		id,
	)
	if err != nil {
		return false, err
	}

	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *repository) ListByStatuses(ctx context.Context, statuses []OrderStatus) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByStatuses"),
	)

	raw := make([]string, len(statuses))
	for i, s := range statuses {
		raw[i] = string(s)
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(raw))
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	log.Debug("orders listed", zap.Int("count", len(orders)))
	return orders, nil
}
