package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/console/apiclient"
	"github.com/inc-inventory/inventory-system/internal/console/storage"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// AuthClient is the part of the API the login and signup flows use.
type AuthClient interface {
	IdentityClient
	Login(ctx context.Context, username, password string) (string, error)
	Signup(ctx context.Context, in apiclient.SignupRequest) (*domain.User, error)
}

// Auth runs the interactive login, logout and registration flows.
type Auth struct {
	store   *Store
	storage storage.Storage
	client  AuthClient
	policy  Policy
	log     zerolog.Logger
}

func NewAuth(store *Store, st storage.Storage, client AuthClient, policy Policy, log zerolog.Logger) *Auth {
	return &Auth{store: store, storage: st, client: client, policy: policy, log: log}
}

// Login authenticates, persists the token and user, and moves the session
// to authenticated in one Set. It returns where to go next: from when the
// login interrupted a protected view, the landing view otherwise.
func (a *Auth) Login(ctx context.Context, username, password, from string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("username and password are required")
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	user, err := a.client.Me(ctx, token)
	if err != nil {
		return "", err
	}
	if err := validateIdentity(user); err != nil {
		return "", err
	}

	if err := a.storage.SetToken(token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	if err := a.storage.SetUser(user); err != nil {
		return "", fmt.Errorf("persist user: %w", err)
	}
	a.store.Set(WithToken(token), WithUser(user), WithAuthenticated(true), MarkInitialized())
	a.log.Info().Str("username", user.Username).Str("role", user.Role.String()).Msg("logged in")

	if from == "" || from == a.policy.LoginPath {
		return a.policy.LandingPath, nil
	}
	return from, nil
}

// Logout clears durable storage and resets the store. A storage error is
// returned after the in-memory session has been reset.
func (a *Auth) Logout(ctx context.Context) error {
	err := a.storage.Clear()
	a.store.Reset()
	if err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	a.log.Info().Msg("logged out")
	return nil
}

// Register creates an account. It does not log the new user in.
func (a *Auth) Register(ctx context.Context, in apiclient.SignupRequest) (*domain.User, error) {
	if in.Role != "" && !in.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, in.Role)
	}
	return a.client.Signup(ctx, in)
}
