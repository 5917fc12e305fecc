package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache is a Redis-backed ExistenceCache. Redis errors are logged and
// reported as cache misses so the caller falls through to the database.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and returns a RedisCache.
func NewRedisCache(addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password by default for local Redis
		DB:       0,  // Default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

// Get returns the cached value for a key if present.
func (c *RedisCache) Get(ctx context.Context, key string) (bool, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false
	}
	if err != nil {
		log.Printf("Redis get failed for key %s: %v", key, err)
		return false, false
	}
	return value == "1", true
}

// Set stores a value for a key with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value bool, ttl time.Duration) {
	stored := "0"
	if value {
		stored = "1"
	}
	if err := c.client.Set(ctx, key, stored, ttl).Err(); err != nil {
		log.Printf("Redis set failed for key %s: %v", key, err)
	}
}

// Delete removes a key.
func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Printf("Redis delete failed for key %s: %v", key, err)
	}
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
