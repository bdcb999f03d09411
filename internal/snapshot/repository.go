package snapshot

import "context"

// DefaultKey is the store key the grid is saved under.
const DefaultKey = "savedTable"

// Repository is a string-keyed durable store for encoded snapshots.
type Repository interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put creates or overwrites the value under key.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases any resources held by the repository.
	Close() error
}
