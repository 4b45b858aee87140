package notification

import (
	"context"
	"fmt"

	"grafica-be/internal/logger"
	"grafica-be/internal/order"

	"go.uber.org/zap"
)

// Service receives order lifecycle hooks and exposes the notification
// feed to the back-office. Delivery is best-effort: a failed insert is
// logged and dropped, it never fails the triggering operation.
type Service interface {
	order.Notifier

	List(ctx context.Context, role string) ([]*Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) OrderCreated(ctx context.Context, o *order.Order) {
	msg := fmt.Sprintf("New order %s from %s: %s (%s)",
		o.ID, o.ClientName, o.ProductName, o.TotalPrice.StringFixed(2))

	s.emit(ctx, RoleAdmin, msg, o.ID)
	s.emit(ctx, RoleEmployee, msg, o.ID)
}

func (s *service) OrderTransitioned(ctx context.Context, o *order.Order, from, to order.OrderStatus) {
	msg := fmt.Sprintf("Order %s moved from %s to %s", o.ID, from, to)
	s.emit(ctx, RoleAdmin, msg, o.ID)
}

func (s *service) emit(ctx context.Context, role, msg, orderID string) {
	n := &Notification{
		RecipientRole: role,
		Message:       msg,
		OrderID:       &orderID,
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		logger.FromCtx(ctx).Warn("failed to store notification",
			zap.String("role", role),
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, role string) ([]*Notification, error) {
	return s.repo.ListByRole(ctx, role)
}

func (s *service) MarkRead(ctx context.Context, id uint) error {
	return s.repo.MarkRead(ctx, id)
}
