package cache

import (
	"context"
	"sync"
	"time"

	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
)

// MemoryCache is a process-local cache used when Redis is disabled and
// as a stand-in during tests
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() cacheport.Cache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
	}
}

// Get retrieves the raw value stored under key, or ErrCacheMiss
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return nil, cacheport.ErrCacheMiss
	}
	return entry.value, nil
}

// Set stores value under key with the given time-to-live
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete removes the given keys; missing keys are not an error
func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil
}

// Close releases nothing for the in-memory cache
func (c *MemoryCache) Close() error {
	return nil
}
