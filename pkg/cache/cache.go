// Package cache provides a Redis cache-aside layer for read-mostly lookup lists.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache stores JSON encoded values in Redis.
// A nil *Cache is valid and behaves as a cache that always misses.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
	errors atomic.Uint64
}

// Stats is a snapshot of the cache counters
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Errors uint64 `json:"errors"`
}

// New creates a cache on top of an existing Redis client
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Dial connects to Redis at addr and verifies the connection
func Dial(ctx context.Context, addr, password string, db int, prefix string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return New(client, prefix, ttl), nil
}

// GetOrLoad fills dest from the cache, or calls load and stores its result.
// Concurrent misses for the same key share a single load.
// Redis failures are counted and fall through to load so the cache never blocks reads.
func (c *Cache) GetOrLoad(ctx context.Context, key string, dest any, load func(ctx context.Context) (any, error)) error {
	if c == nil {
		return loadInto(ctx, load, dest)
	}

	// the generation is read before loading so a write that lands mid-load retires this key
	fullKey, err := c.versionedKey(ctx, key)
	if err != nil {
		c.errors.Add(1)
		c.misses.Add(1)
		return loadInto(ctx, load, dest)
	}

	data, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, dest); err == nil {
			c.hits.Add(1)
			return nil
		}
		c.errors.Add(1)
	case errors.Is(err, redis.Nil):
		// miss
	default:
		c.errors.Add(1)
	}
	c.misses.Add(1)

	v, err, _ := c.group.Do(fullKey, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(loaded)
		if err != nil {
			return nil, fmt.Errorf("cache marshal error: %w", err)
		}
		if err := c.client.Set(ctx, fullKey, encoded, c.ttl).Err(); err != nil {
			c.errors.Add(1)
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), dest)
}

// Invalidate retires every cached value of key by moving it to a new generation.
// Values stored under older generations are never read again and expire with their TTL.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	if err := c.client.Incr(ctx, c.generationKey(key)).Err(); err != nil {
		c.errors.Add(1)
		return fmt.Errorf("cache invalidate error: %w", err)
	}
	return nil
}

func (c *Cache) generationKey(key string) string {
	return c.prefix + key + ":gen"
}

// versionedKey returns the Redis key holding the current generation of key
func (c *Cache) versionedKey(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, c.generationKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s:v%d", c.prefix, key, gen), nil
}

// Stats returns the current counters
func (c *Cache) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Errors: c.errors.Load(),
	}
}

// Ping checks if the Redis connection is healthy
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client connection
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func loadInto(ctx context.Context, load func(ctx context.Context) (any, error), dest any) error {
	v, err := load(ctx)
	if err != nil {
		return err
	}
	return assign(v, dest)
}

// assign copies v into dest through a JSON round trip so the nil cache and the Redis path
// hand callers identical values
func assign(v, dest any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
