package services

import (
	"context"
	"time"
)

// Cache is a string key-value cache with per-entry TTL. Get returns an empty
// string on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
