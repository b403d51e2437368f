package storage

import (
	"sync"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// MemoryStorage keeps the session for the lifetime of the process only.
type MemoryStorage struct {
	mu    sync.Mutex
	token *string
	user  *domain.User
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return "", ErrNotFound
	}
	return *m.token, nil
}

func (m *MemoryStorage) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = &token
	return nil
}

func (m *MemoryStorage) User() (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, ErrNotFound
	}
	u := *m.user
	return &u, nil
}

func (m *MemoryStorage) SetUser(u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u == nil {
		m.user = nil
		return nil
	}
	cp := *u
	m.user = &cp
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.user = nil, nil
	return nil
}
