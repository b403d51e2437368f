package ports

import (
	"context"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns at most limit users ordered by username.
	List(ctx context.Context, limit int) ([]*domain.User, error)
	// Update applies patch and returns the updated document.
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}
