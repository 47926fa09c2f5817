package db

import (
	"context"
	"time"
)

// RedisClient defines the key-value operations the application needs from
// its backing store. Implemented by the real go-redis client and by an
// in-memory client used for tests and single-instance dev runs.
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	GetContext() context.Context
	Ping() error
}
