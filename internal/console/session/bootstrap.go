package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/console/storage"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// ErrAbandoned is reported by a Task whose context was cancelled while the
// identity call was in flight. Nothing was written in that case.
var ErrAbandoned = errors.New("session: bootstrap abandoned")

// errInvalidIdentity marks a whoami payload that cannot back a session.
var errInvalidIdentity = errors.New("identity response is not a valid user")

// IdentityClient resolves a bearer token to its user.
type IdentityClient interface {
	Me(ctx context.Context, token string) (*domain.User, error)
}

// Lifecycle is the coarse session state.
type Lifecycle int

const (
	Uninitialized Lifecycle = iota
	Resolving
	Authenticated
	Unauthenticated
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "uninitialized"
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Task is the handle of a bootstrap run.
type Task struct {
	done   chan struct{}
	result Session
	err    error
}

// Done is closed when the run has finished or was abandoned.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the run finishes or ctx ends and returns the session
// the run produced.
func (t *Task) Wait(ctx context.Context) (Session, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return Session{}, ctx.Err()
	}
}

// Bootstrapper resolves the persisted token once per process.
type Bootstrapper struct {
	store    *Store
	storage  storage.Storage
	identity IdentityClient
	log      zerolog.Logger

	once    sync.Once
	started atomic.Bool
	task    *Task
}

func NewBootstrapper(store *Store, st storage.Storage, identity IdentityClient, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{store: store, storage: st, identity: identity, log: log}
}

// Start launches the run on its own goroutine. Later calls return the same
// Task and ignore their context.
func (b *Bootstrapper) Start(ctx context.Context) *Task {
	b.once.Do(func() {
		b.task = &Task{done: make(chan struct{})}
		b.started.Store(true)
		go func() {
			defer close(b.task.done)
			b.task.result, b.task.err = b.run(ctx)
		}()
	})
	return b.task
}

// State derives the lifecycle from bootstrap progress and the store.
func (b *Bootstrapper) State() Lifecycle {
	s := b.store.Get()
	switch {
	case !b.started.Load() && !s.Initialized:
		return Uninitialized
	case !s.Initialized:
		return Resolving
	case s.IsAuthenticated:
		return Authenticated
	default:
		return Unauthenticated
	}
}

func (b *Bootstrapper) run(ctx context.Context) (Session, error) {
	token, err := b.storage.Token()
	if errors.Is(err, storage.ErrNotFound) || (err == nil && token == "") {
		b.store.Set(MarkInitialized())
		return b.store.Get(), nil
	}
	if err != nil {
		b.log.Warn().Err(err).Msg("read persisted token")
		return b.fail(), nil
	}

	user, err := b.identity.Me(ctx, token)
	if ctx.Err() != nil {
		b.log.Debug().Msg("bootstrap abandoned before identity call returned")
		return Session{}, ErrAbandoned
	}
	if err == nil {
		err = validateIdentity(user)
	}
	if err != nil {
		b.log.Info().Err(err).Msg("persisted token rejected")
		return b.fail(), nil
	}

	if err := b.storage.SetUser(user); err != nil {
		b.log.Warn().Err(err).Msg("persist user")
	}
	b.store.Set(WithToken(token), WithUser(user), WithAuthenticated(true), MarkInitialized())
	return b.store.Get(), nil
}

// fail clears durable state and writes the unauthenticated terminal state.
func (b *Bootstrapper) fail() Session {
	if err := b.storage.Clear(); err != nil {
		b.log.Warn().Err(err).Msg("clear persisted session")
	}
	b.store.Set(WithToken(""), WithUser(nil), WithAuthenticated(false), MarkInitialized())
	return b.store.Get()
}

func validateIdentity(u *domain.User) error {
	if u == nil || u.ID == "" || u.Username == "" {
		return errInvalidIdentity
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: role %q", errInvalidIdentity, u.Role)
	}
	return nil
}
