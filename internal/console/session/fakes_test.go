package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/inc-inventory/inventory-system/internal/console/apiclient"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

type fakeClient struct {
	calls    atomic.Int32
	meFn     func(ctx context.Context, token string) (*domain.User, error)
	loginFn  func(ctx context.Context, username, password string) (string, error)
	signupFn func(ctx context.Context, in apiclient.SignupRequest) (*domain.User, error)
}

func (f *fakeClient) Me(ctx context.Context, token string) (*domain.User, error) {
	f.calls.Add(1)
	return f.meFn(ctx, token)
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeClient) Signup(ctx context.Context, in apiclient.SignupRequest) (*domain.User, error) {
	return f.signupFn(ctx, in)
}

// failingStorage reports a read error for every key.
type failingStorage struct {
	cleared bool
}

var errDisk = errors.New("disk on fire")

func (f *failingStorage) Token() (string, error) { return "", errDisk }
func (f *failingStorage) SetToken(string) error { return errDisk }
func (f *failingStorage) User() (*domain.User, error) { return nil, errDisk }
func (f *failingStorage) SetUser(*domain.User) error { return errDisk }
func (f *failingStorage) Clear() error { f.cleared = true; return nil }

func alice() *domain.User {
	return &domain.User{ID: "1", Username: "alice", Role: domain.RoleOwner, IsActive: true}
}

func meReturning(u *domain.User, err error) func(context.Context, string) (*domain.User, error) {
	return func(context.Context, string) (*domain.User, error) {
		if err != nil {
			return nil, err
		}
		cp := *u
		return &cp, nil
	}
}
