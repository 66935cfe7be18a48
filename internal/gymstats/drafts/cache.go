package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

// LocalCache is the ephemeral string key-value store drafts are kept in.
type LocalCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

var (
	_ LocalCache = (*MemoryCache)(nil)
	_ LocalCache = (*RedisCache)(nil)
)

// MemoryCache keeps drafts in process memory. When the cache is full freecache evicts
// the oldest entries, so a long-idle draft can be lost.
type MemoryCache struct {
	cache *freecache.Cache
}

func NewMemoryCache(sizeMB int) *MemoryCache {
	return &MemoryCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	value, err := c.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("freecache get %s: %w", key, err)
	}
	return string(value), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	// no expiry: a draft lives until it is committed or cleared
	if err := c.cache.Set([]byte(key), []byte(value), 0); err != nil {
		return fmt.Errorf("freecache set %s: %w", key, err)
	}
	return nil
}

func (c *MemoryCache) Remove(_ context.Context, key string) error {
	c.cache.Del([]byte(key))
	return nil
}

// RedisCache shares drafts between service instances.
type RedisCache struct {
	redisClient *redis.Client
}

func NewRedisCache(redisClient *redis.Client) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Remove(ctx context.Context, key string) error {
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
