package ports

import "context"

// KeyValueReader reads raw string values by key
type KeyValueReader interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
}

// KeyValueWriter stores and removes raw string values
type KeyValueWriter interface {
	Set(ctx context.Context, key, value string) error
	// Remove deletes all given keys as one operation; absent keys are ignored
	Remove(ctx context.Context, keys ...string) error
}

// KeyValueStore is the composite durable storage capability
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	Close() error
}
