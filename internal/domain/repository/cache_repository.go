package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-level cache. A miss is (nil, nil), never an error.
type CacheRepository interface {
	// Get returns the cached value, nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// SetNX stores a value only when the key is absent; reports whether the
	// write happened. Used for one-time confirmation codes.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Increment adds delta to an integer key and returns the new value.
	Increment(ctx context.Context, key string, delta int64) (int64, error)
}
