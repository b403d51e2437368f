package ports

import (
	"context"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// CategoryInput carries the fields of a new category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	IsActive    bool
	CategoryID  string
}

// ProductService defines use-case operations for products.
type ProductService interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Movements(ctx context.Context, productID string, limit int) ([]*domain.StockMovement, error)
}
