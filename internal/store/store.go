package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("store: key not found")

// Store is a single-slot-per-key persistence backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
