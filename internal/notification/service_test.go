package notification

import (
	"context"
	"errors"
	"testing"

	"grafica-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, n *Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) ListByRole(ctx context.Context, role string) ([]*Notification, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Notification), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testOrder() *order.Order {
	total, _ := decimal.NewFromString("375.00")
	return &order.Order{
		ID:          "PED-20260901-0001",
		ClientName:  "Maria Souza",
		ProductName: "Lona",
		TotalPrice:  total,
		Status:      order.StatusPending,
	}
}

func TestService_OrderCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("Notifies both staff roles", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Insert", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.RecipientRole == RoleAdmin
		})).Return(nil).Once()
		repo.On("Insert", ctx, mock.MatchedBy(func(n *Notification) bool {
			return n.RecipientRole == RoleEmployee
		})).Return(nil).Once()

		svc.OrderCreated(ctx, testOrder())
		repo.AssertExpectations(t)
	})

	t.Run("Insert failure is swallowed", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Insert", ctx, mock.Anything).Return(errors.New("db down"))

		// Must not panic or propagate: delivery is best-effort.
		svc.OrderCreated(ctx, testOrder())
	})

	t.Run("Message carries order context", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		var captured *Notification
		repo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*Notification)
		}).Return(nil)

		svc.OrderCreated(ctx, testOrder())

		require.NotNil(t, captured)
		assert.Contains(t, captured.Message, "PED-20260901-0001")
		assert.Contains(t, captured.Message, "Maria Souza")
		require.NotNil(t, captured.OrderID)
		assert.Equal(t, "PED-20260901-0001", *captured.OrderID)
	})
}

func TestService_OrderTransitioned(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	svc := NewService(repo)

	var captured *Notification
	repo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*Notification)
	}).Return(nil).Once()

	o := testOrder()
	o.Status = order.StatusInProduction
	svc.OrderTransitioned(ctx, o, order.StatusPending, order.StatusInProduction)

	repo.AssertExpectations(t)
	require.NotNil(t, captured)
	assert.Equal(t, RoleAdmin, captured.RecipientRole)
	assert.Contains(t, captured.Message, "PENDING")
	assert.Contains(t, captured.Message, "IN_PRODUCTION")
}
