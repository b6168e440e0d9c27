// Package memstore provides an in-process KeyValueStore that forgets
// everything when the program exits.
package memstore

import (
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*Store)(nil)

// Store is a map-backed KeyValueStore safe for concurrent use.
type Store struct {
	items map[string]string
	mu    sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{items: make(map[string]string)}
}

// NewWithItems creates a Store seeded with a copy of items.
func NewWithItems(items map[string]string) *Store {
	s := New()
	for k, v := range items {
		s.items[k] = v
	}
	return s
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (s *Store) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// RemoveItem deletes key. Absent keys are ignored.
func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
