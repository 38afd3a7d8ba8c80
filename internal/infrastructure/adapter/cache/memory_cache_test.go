package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and retrieve values", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Minute))

		value, err := c.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("should miss on unknown keys", func(t *testing.T) {
		c := NewMemoryCache()

		value, err := c.Get(ctx, "missing")
		assert.Nil(t, value)
		assert.ErrorIs(t, err, cacheport.ErrCacheMiss)
	})

	t.Run("should expire entries after their TTL", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		value, err := c.Get(ctx, "key")
		assert.Nil(t, value)
		assert.ErrorIs(t, err, cacheport.ErrCacheMiss)
	})

	t.Run("should keep entries with zero TTL until deleted", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))

		value, err := c.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), value)
	})

	t.Run("should delete keys, ignoring missing ones", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))

		require.NoError(t, c.Delete(ctx, "a", "b", "missing"))

		_, err := c.Get(ctx, "a")
		assert.ErrorIs(t, err, cacheport.ErrCacheMiss)
		_, err = c.Get(ctx, "b")
		assert.ErrorIs(t, err, cacheport.ErrCacheMiss)
	})

	t.Run("should overwrite existing values", func(t *testing.T) {
		c := NewMemoryCache()

		require.NoError(t, c.Set(ctx, "key", []byte("old"), time.Minute))
		require.NoError(t, c.Set(ctx, "key", []byte("new"), time.Minute))

		value, err := c.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), value)
	})
}
