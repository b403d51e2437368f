package ports

import (
	"context"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns the newest orders first, capped at limit.
	List(ctx context.Context, limit int) ([]*domain.Order, error)
	// ListBetween returns orders created within [from, to], newest first.
	// Zero times leave that side of the range open.
	ListBetween(ctx context.Context, from, to time.Time, limit int) ([]*domain.Order, error)
	// UpdateStatus sets the status to to only while the stored status is one
	// of from. It reports false when the order is missing or the guard did
	// not match.
	UpdateStatus(ctx context.Context, id string, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
}

// StockMovementRepository persists the stock audit trail.
type StockMovementRepository interface {
	Insert(ctx context.Context, m *domain.StockMovement) error
	// ListByProduct returns the newest movements of a product first.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*domain.StockMovement, error)
}
