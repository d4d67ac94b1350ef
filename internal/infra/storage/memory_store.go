// Package storage provides KeyValueStore backends for cart and session persistence.
package storage

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"
)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates a process-local store. Values do not survive a restart.
func NewMemoryStore() repository.KeyValueStore {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Read(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]

	return value, ok, nil
}

func (s *memoryStore) Write(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value

	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
