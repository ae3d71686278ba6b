package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/staragent/staragent-go/pkg/persona"
)

// RedisCache stores persona documents in Redis under "persona:<celebrity>".
//
// Useful when several server instances should share one persona store; the
// file backend remains the default for single-process deployments.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis persona cache.
type RedisConfig struct {
	// Addr is the Redis address, e.g. "localhost:6379".
	Addr string

	// Password is the Redis password (optional).
	Password string

	// DB is the Redis database index.
	DB int

	// TTL is the entry lifetime. Zero means entries never expire.
	TTL time.Duration
}

// NewRedisCache creates a Redis-backed persona cache and verifies the
// connection with a ping.
func NewRedisCache(cfg *RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func redisKey(name string) string {
	return "persona:" + name
}

// Get retrieves the cached persona for a celebrity name.
// A missing key is a cache miss, returned as (nil, nil).
func (c *RedisCache) Get(ctx context.Context, name string) (*persona.Persona, error) {
	data, err := c.client.Get(ctx, redisKey(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read persona from redis: %w", err)
	}

	var p persona.Persona
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode persona from redis: %w", err)
	}
	return &p, nil
}

// Put stores a persona as a JSON document.
func (c *RedisCache) Put(ctx context.Context, name string, p *persona.Persona) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode persona: %w", err)
	}
	if err := c.client.Set(ctx, redisKey(name), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write persona to redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
