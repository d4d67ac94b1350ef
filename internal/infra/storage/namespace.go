package storage

import (
	"context"

	"storefront/internal/domain/repository"
)

const sessionKeyPrefix = "session:"

// namespacedStore scopes every key of a shared backend to one session.
type namespacedStore struct {
	inner  repository.KeyValueStore
	prefix string
}

// Namespace returns a view of store whose keys live under session:<sessionID>:.
// Closing the view does not close the shared backend.
func Namespace(store repository.KeyValueStore, sessionID string) repository.KeyValueStore {
	return &namespacedStore{
		inner:  store,
		prefix: SessionPrefix(sessionID),
	}
}

type sessionStores struct {
	store repository.KeyValueStore
}

// NewSessionStores partitions store into per-session namespaces.
func NewSessionStores(store repository.KeyValueStore) repository.SessionStores {
	return &sessionStores{store: store}
}

func (s *sessionStores) ForSession(sessionID string) repository.KeyValueStore {
	return Namespace(s.store, sessionID)
}

// SessionPrefix returns the key prefix used for sessionID.
func SessionPrefix(sessionID string) string {
	return sessionKeyPrefix + sessionID + ":"
}

func (s *namespacedStore) Read(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Read(ctx, s.prefix+key)
}

func (s *namespacedStore) Write(ctx context.Context, key, value string) error {
	return s.inner.Write(ctx, s.prefix+key, value)
}

func (s *namespacedStore) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, s.prefix+key)
}

func (s *namespacedStore) Close() error {
	return nil
}
