package ports

import (
	"context"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// SignupInput carries the fields of a new account.
type SignupInput struct {
	Username string
	Password string
	Role     domain.Role
	FullName string
	Email    string
}

// AuthService covers signup, login and bearer-token resolution.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Authenticate resolves a bearer token to an active user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// SelfUpdateInput lets a user change their own username or password.
type SelfUpdateInput struct {
	Username *string
	Password *string
}

// UserService is the owner-facing user administration surface plus the
// self-service profile operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, in SignupInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
	UpdateSelf(ctx context.Context, id string, in SelfUpdateInput) (*domain.User, error)
	SetProfilePicture(ctx context.Context, id, path string) (*domain.User, error)
}
