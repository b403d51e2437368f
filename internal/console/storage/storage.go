// Package storage keeps the console's durable copy of the session: the
// bearer token and the last known user record.
package storage

import (
	"errors"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// Keys under which the session is persisted.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound is returned when a key has never been written or was cleared.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a last-write-wins key-value mirror of the session. It is shared
// with other console processes and is not synchronised with them.
type Storage interface {
	Token() (string, error)
	SetToken(token string) error
	User() (*domain.User, error)
	SetUser(u *domain.User) error
	// Clear removes both keys. Clearing an empty storage is not an error.
	Clear() error
}
