package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when the requested key is not in the cache
var ErrCacheMiss = errors.New("cache miss")

// Cache defines a small key-value cache with per-key expiration
type Cache interface {
	// Get retrieves the raw value stored under key, or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the given time-to-live
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys; missing keys are not an error
	Delete(ctx context.Context, keys ...string) error

	// Close releases the underlying connection
	Close() error
}
