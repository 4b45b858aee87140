package notification

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	Insert(ctx context.Context, n *Notification) error
	ListByRole(ctx context.Context, role string) ([]*Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, n *Notification) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (recipient_role, message, order_id)
		VALUES ($1,$2,$3)
		RETURNING id, created_at
	`, n.RecipientRole, n.Message, n.OrderID).Scan(&n.ID, &n.CreatedAt)
}

func (r *repository) ListByRole(ctx context.Context, role string) ([]*Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recipient_role, message, read, order_id, created_at
		FROM notifications
		WHERE recipient_role = $1
		ORDER BY read, created_at DESC
	`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Notification
	for rows.Next() {
		var n Notification
		err := rows.Scan(&n.ID, &n.RecipientRole, &n.Message, &n.Read, &n.OrderID, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, &n)
	}

	return list, rows.Err()
}

func (r *repository) MarkRead(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("notification %d not found", id)
	}
	return nil
}
