package service

import (
	"context"
	"time"
)

// CacheStore is a best-effort JSON cache. There is no invalidation
// protocol beyond TTL expiry and explicit Delete on write; readers must
// tolerate stale entries.
type CacheStore interface {
	// GetJSON loads the value stored under key into dest.
	// Returns false (and no error) on a cache miss.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON stores value under key with the given TTL.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
