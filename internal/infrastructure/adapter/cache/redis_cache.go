package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// RedisCache implements the cache port backed by Redis
type RedisCache struct {
	client *redis.Client
	logger coreport.Logger
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(addr, password string, db int, logger coreport.Logger) (cacheport.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis", map[string]any{
		"addr": addr,
		"db":   db,
	})

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}

// Get retrieves the raw value stored under key, or ErrCacheMiss
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, cacheport.ErrCacheMiss
		}
		return nil, err
	}
	return raw, nil
}

// Set stores value under key with the given time-to-live
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes the given keys; missing keys are not an error
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Close releases the underlying connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
