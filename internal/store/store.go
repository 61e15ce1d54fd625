// Package store persists named JSON blobs.  The application keeps its
// whole state in two blobs (tenants and rooms) that are always written
// wholesale; the store has no knowledge of their contents.
package store

import (
	"context"
	"errors"
)

// Keys under which the two collections are persisted.
const (
	KeyTenants = "tenants"
	KeyRooms   = "rooms"
)

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// Store reads and writes named blobs.  Implementations must treat the
// value as opaque bytes.
type Store interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, data []byte) error
	// Clear removes the blob stored under key.  Clearing an absent key
	// is not an error.
	Clear(ctx context.Context, key string) error
}
