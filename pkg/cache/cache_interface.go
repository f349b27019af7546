package cache

import (
	"context"
	"time"
)

// Cache is the contract of the read-through cache used by repositories.
// Implementations: Redis (infrastructure/cache) and Noop.
type Cache interface {
	// Get reads key and unmarshals it into dest.
	// found = false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with ttl. Non-string values are JSON encoded.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
