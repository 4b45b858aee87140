package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending          OrderStatus = "PENDING"
	StatusInProduction     OrderStatus = "IN_PRODUCTION"
	StatusReadyForShipping OrderStatus = "READY_FOR_SHIPPING"
	StatusCompleted        OrderStatus = "COMPLETED"
	StatusCancelled        OrderStatus = "CANCELLED"
)

type Order struct {
	ID              string
	ProductID       string
	ProductName     string // snapshot; survives product rename/delete
	ClientName      string
	ClientPhone     *string
	ClientDocument  *string
	WidthCm         float64
	HeightCm        float64
	Quantity        int
	SelectedVariant *string
	Finishing       *string
	Instructions    *string
	FilePaths       []string
	TotalPrice      decimal.Decimal
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CreateOrderInput struct {
	ProductID       string
	ClientName      string
	ClientPhone     *string
	ClientDocument  *string
	WidthCm         float64
	HeightCm        float64
	Quantity        int
	SelectedVariant *string
	Finishing       *string
	Instructions    *string
	FilePaths       []string
}

// UpdateDetailsInput carries the descriptive fields staff may edit after
// submission. Dimensions, quantity, product and price are immutable: the
// total was already quoted to the client.
type UpdateDetailsInput struct {
	ClientName     *string
	ClientPhone    *string
	ClientDocument *string
	Instructions   *string
	Finishing      *string
}

func (in UpdateDetailsInput) Empty() bool {
	return in.ClientName == nil &&
		in.ClientPhone == nil &&
		in.ClientDocument == nil &&
		in.Instructions == nil &&
		in.Finishing == nil
}

// ActiveStatuses are the states shown on the production board.
var ActiveStatuses = []OrderStatus{StatusPending, StatusInProduction, StatusReadyForShipping}

// HistoryStatuses are the terminal states shown on the history screen.
var HistoryStatuses = []OrderStatus{StatusCompleted, StatusCancelled}
