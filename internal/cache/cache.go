// Package cache provides the look-aside cache sitting in front of the
// repositories, plus the key naming and invalidation rules the use
// cases rely on.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the expiry applied to cached read results unless the
// caller chooses its own.
const DefaultTTL = 5 * time.Minute

// Cache is a string-keyed byte store with per-key TTL. Implementations
// must treat a missing key as a normal outcome, never an error; errors
// signal a backing-store fault and callers fall through to the
// repository.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	GetMany(ctx context.Context, keys []string) (map[string][]byte, error)
	Has(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, keys ...string) error

	// DelMatch removes every key matching the given regular expression.
	DelMatch(ctx context.Context, pattern string) error

	Keys(ctx context.Context) ([]string, error)
	Flush(ctx context.Context) error
}
