// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// KeyValueStore is a durable string-keyed store. Each key is written as a whole;
// there is no transaction spanning several keys.
type KeyValueStore interface {
	// Read returns the value for key. found is false when the key was never written or was removed.
	Read(ctx context.Context, key string) (value string, found bool, err error)

	// Write replaces the value for key.
	Write(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the backend connection.
	Close() error
}

// SessionStores hands out the private key space of a session.
type SessionStores interface {
	ForSession(sessionID string) KeyValueStore
}
