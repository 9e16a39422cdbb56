package ports

import "context"

// StateStore is a durable key-value store scoped to a workspace or to the
// whole installation. Values are opaque blobs.
type StateStore interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Update replaces the value stored under key. The write is durable
	// once Update returns nil.
	Update(ctx context.Context, key string, value []byte) error
}
