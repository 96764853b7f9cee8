package repository

import (
	"context"
	"time"
)

// CacheRepository is a volatile key-value store used for derived values
// such as like counts. Losing an entry is always safe; readers fall back
// to the relational store.
type CacheRepository interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	// Get returns the value and whether the key existed.
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
