package ports

import (
	"context"
	"time"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// FindByName matches the whole name case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	// FindByNameFragment returns the first category whose name contains
	// fragment, case-insensitively.
	FindByNameFragment(ctx context.Context, fragment string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id string, patch domain.CategoryPatch, at time.Time) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindActiveByID(ctx context.Context, id string) (*domain.Product, error)
	// NameTaken reports whether another product (id != excludeID) in the
	// same category already uses name, compared case-insensitively.
	NameTaken(ctx context.Context, name, categoryID, excludeID string) (bool, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	// ListAll returns every product sorted by name, capped at limit.
	ListAll(ctx context.Context, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch, at time.Time) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock removes qty units only when at least qty are in stock.
	// It returns false when the guard did not match.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
	IncrementStock(ctx context.Context, id string, qty int) error
}
