// Package cache provides read-through caching of query results with
// explicit invalidation on mutation.
package cache

import (
	"context"
	"time"
)

// Store is a byte-level key/value store with per-entry TTL and tag indexes.
// A tag groups keys so that all of them can be purged together.
type Store interface {
	// Get returns the live value for key. ok is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes keys. Absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Tag records key under tag.
	Tag(ctx context.Context, tag, key string) error
	// InvalidateTag deletes every key recorded under tag, then the tag itself.
	InvalidateTag(ctx context.Context, tag string) error
}
