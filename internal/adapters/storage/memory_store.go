package storage

import (
	"context"
	"maps"
	"sync"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/ports"
)

// MemoryStore implements ports.KeyValueStore without durability. It backs
// session-only operation when no database can be opened.
type MemoryStore struct {
	mu      sync.Mutex
	closed  bool
	entries map[string]string
}

var _ ports.KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store, optionally seeded with entries
func NewMemoryStore(seed map[string]string) *MemoryStore {
	entries := make(map[string]string, len(seed))
	maps.Copy(entries, seed)
	return &MemoryStore{entries: entries}
}

// Get implements KeyValueReader.Get
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, domain.ErrStorageUnavailable
	}
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set implements KeyValueWriter.Set
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStorageUnavailable
	}
	s.entries[key] = value
	return nil
}

// Remove implements KeyValueWriter.Remove
func (s *MemoryStore) Remove(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStorageUnavailable
	}
	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

// Close marks the store unusable; later calls fail with ErrStorageUnavailable
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Snapshot returns a copy of all entries
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.entries)
}
