package db

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get on a cache miss.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the methods the venue cache needs from Redis.
type RedisClient interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
