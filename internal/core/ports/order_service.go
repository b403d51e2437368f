package ports

import (
	"context"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// Actor identifies the authenticated user performing an operation.
type Actor struct {
	ID       string
	Username string
	Role     domain.Role
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	Customer domain.Customer
	Items    []OrderLineInput
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, actor Actor, in CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Cancel(ctx context.Context, actor Actor, id string) (*domain.Order, error)
	MarkPending(ctx context.Context, id string) (*domain.Order, error)
}

// StockPublisher hands stock movements to the asynchronous recorder.
type StockPublisher interface {
	Publish(m domain.StockMovement)
}

// StockRecorder persists a single stock movement.
type StockRecorder interface {
	Record(ctx context.Context, m domain.StockMovement) error
}
