package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCacheClient wraps a go-redis client.
type RedisCacheClient struct {
	client *redis.Client
}

func NewRedisCacheClient(client *redis.Client) *RedisCacheClient {
	return &RedisCacheClient{client: client}
}

// Set sets a key-value pair in Redis. A zero ttl keeps the key forever.
func (r *RedisCacheClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Get retrieves the value for a given key from Redis
func (r *RedisCacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisCacheClient) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCacheClient) Ping(ctx context.Context) error {
	if _, err := r.client.Ping(ctx).Result(); err != nil {
		return err
	}
	log.Println("[RedisCacheClient] Connected to Redis")
	return nil
}

func (r *RedisCacheClient) Close() error {
	return r.client.Close()
}
