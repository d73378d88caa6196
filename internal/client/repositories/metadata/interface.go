// Package metadata is the console's local key/value store. It backs the
// durable session lifetime: values written here survive restarts.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes every listed key; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
