package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"grafica-be/internal/logger"
	"grafica-be/internal/pricing"
	"grafica-be/internal/product"
	"grafica-be/internal/utils"

	"go.uber.org/zap"
)

// ProductGetter is the slice of the product catalog the order flow needs.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*product.Product, error)
}

// Notifier receives lifecycle hooks. Implementations must not block on
// delivery; the order flow never checks whether a notification landed.
type Notifier interface {
	OrderCreated(ctx context.Context, o *Order)
	OrderTransitioned(ctx context.Context, o *Order, from, to OrderStatus)
}

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	Transition(ctx context.Context, id string, target OrderStatus) (*Order, error)
	UpdateDetails(ctx context.Context, id string, in UpdateDetailsInput) (*Order, error)
	ListActive(ctx context.Context) ([]*Order, error)
	ListHistory(ctx context.Context) ([]*Order, error)
}

type service struct {
	repo     Repository
	products ProductGetter
	notifier Notifier
}

func NewService(repo Repository, products ProductGetter, notifier Notifier) Service {
	return &service{
		repo:     repo,
		products: products,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("product_id", input.ProductID),
	)

	vErr := &ValidationError{}
	if strings.TrimSpace(input.ProductID) == "" {
		vErr.add("product_id", "is required")
	}
	if strings.TrimSpace(input.ClientName) == "" {
		vErr.add("client_name", "is required")
	}
	if input.WidthCm <= 0 {
		vErr.add("width_cm", "must be greater than zero")
	}
	if input.HeightCm <= 0 {
		vErr.add("height_cm", "must be greater than zero")
	}
	if input.Quantity <= 0 {
		vErr.add("quantity", "must be a positive integer")
	}

	var p *product.Product
	if input.ProductID != "" {
		var err error
		p, err = s.products.GetProduct(ctx, input.ProductID)
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, err
		}
		if err != nil {
			return nil, storageErr("load product", err)
		}

		if input.SelectedVariant != nil && *input.SelectedVariant != "" &&
			!p.Pricing.HasOption(*input.SelectedVariant) {
			vErr.add("selected_variant", "is not an option for this product")
		}
	}

	if len(vErr.Violations) > 0 {
		log.Warn("order rejected", zap.Int("violations", len(vErr.Violations)))
		return nil, vErr
	}

	quote, err := pricing.ComputeQuote(p, input.WidthCm, input.HeightCm, input.Quantity, input.SelectedVariant)
	if err != nil {
		// Field checks above cover the engine's inputs; anything left
		// is still the caller's problem, reported the same way.
		vErr.add("pricing", err.Error())
		return nil, vErr
	}

	o := &Order{
		ID:              utils.GenerateOrderCode(),
		ProductID:       p.ID,
		ProductName:     p.Name,
		ClientName:      strings.TrimSpace(input.ClientName),
		ClientPhone:     input.ClientPhone,
		ClientDocument:  input.ClientDocument,
		WidthCm:         input.WidthCm,
		HeightCm:        input.HeightCm,
		Quantity:        input.Quantity,
		SelectedVariant: input.SelectedVariant,
		Finishing:       input.Finishing,
		Instructions:    input.Instructions,
		FilePaths:       input.FilePaths,
		TotalPrice:      quote.Total,
		Status:          StatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, storageErr("create order", err)
	}

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("total", o.TotalPrice.String()),
	)

	s.notifier.OrderCreated(ctx, o)

	return o, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrOrderNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storageErr("load order", err)
	}
	return o, nil
}

func (s *service) Transition(ctx context.Context, id string, target OrderStatus) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "TransitionOrder"),
		zap.String("order_id", id),
		zap.String("target", string(target)),
	)

	if !validStatus(target) {
		return nil, errorIllegal(target, target)
	}

	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrOrderNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storageErr("load order", err)
	}

	from := o.Status
	if !CanTransition(from, target) {
		log.Warn("transition rejected", zap.String("from", string(from)))
		return nil, errorIllegal(from, target)
	}

	applied, err := s.repo.UpdateStatus(ctx, id, from, target)
	if err != nil {
		return nil, storageErr("update status", err)
	}
	if !applied {
		// Someone moved the order between our read and write. The
		// conditional UPDATE saw a different status, so this request
		// no longer describes a legal step.
		current, rerr := s.repo.GetByID(ctx, id)
		if rerr != nil {
			return nil, errorIllegal(from, target)
		}
		return nil, errorIllegal(current.Status, target)
	}

	o.Status = target
	o.UpdatedAt = time.Now()

	log.Info("order transitioned", zap.String("from", string(from)))

	s.notifier.OrderTransitioned(ctx, o, from, target)

	return o, nil
}

func (s *service) UpdateDetails(ctx context.Context, id string, in UpdateDetailsInput) (*Order, error) {
	vErr := &ValidationError{}
	if in.Empty() {
		vErr.add("fields", "at least one editable field is required")
	}
	if in.ClientName != nil && strings.TrimSpace(*in.ClientName) == "" {
		vErr.add("client_name", "cannot be blank")
	}
	if len(vErr.Violations) > 0 {
		return nil, vErr
	}

	applied, err := s.repo.UpdateDetails(ctx, id, in)
	if err != nil {
		return nil, storageErr("update details", err)
	}
	if !applied {
		return nil, ErrOrderNotFound
	}

	return s.Get(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.ListByStatuses(ctx, ActiveStatuses)
	if err != nil {
		return nil, storageErr("list active orders", err)
	}
	return orders, nil
}

func (s *service) ListHistory(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.ListByStatuses(ctx, HistoryStatuses)
	if err != nil {
		return nil, storageErr("list order history", err)
	}
	return orders, nil
}
