package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

const (
	defaultBucket = "session"
	openTimeout   = time.Second
)

// BoltStorage persists the session in a single bbolt file.
type BoltStorage struct {
	db     *bolt.DB
	bucket []byte
}

// DefaultPath returns the state file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "inventory", "session.db"), nil
}

// OpenBolt opens (or creates) the state file and ensures the bucket exists.
func OpenBolt(path string) (*BoltStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open state file: %w", err)
	}

	bucket := []byte(defaultBucket)
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltStorage{db: db, bucket: bucket}, nil
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}

func (s *BoltStorage) Token() (string, error) {
	v, err := s.get(KeyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *BoltStorage) SetToken(token string) error {
	return s.put(KeyToken, []byte(token))
}

func (s *BoltStorage) User() (*domain.User, error) {
	v, err := s.get(KeyUser)
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func (s *BoltStorage) SetUser(u *domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.put(KeyUser, data)
}

func (s *BoltStorage) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := b.Delete([]byte(KeyToken)); err != nil {
			return err
		}
		return b.Delete([]byte(KeyUser))
	})
}

func (s *BoltStorage) get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (s *BoltStorage) put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
}
