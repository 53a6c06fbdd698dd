package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/singleflight"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache memoizes computed values in a Store. Concurrent misses on one key
// share a single computation. Store failures degrade to direct computation.
type Cache struct {
	store      Store
	group      singleflight.Group
	log        *slog.Logger
	defaultTTL time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithDefaultTTL sets the lifetime used when GetOrCompute is given ttl <= 0.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.defaultTTL = ttl }
}

// DefaultTTL is the fallback entry lifetime.
const DefaultTTL = time.Hour

// New creates a Cache over store.
func New(store Store, log *slog.Logger, opts ...Option) *Cache {
	c := &Cache{
		store:      store,
		log:        log.With("component", "cache"),
		defaultTTL: DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns the live cached value for key, or runs compute, stores
// its result for ttl (the cache default when ttl <= 0) and records key under
// every tag. Errors from compute are returned and nothing is stored.
//
// The shared computation is detached from the caller's cancellation so one
// abandoned request does not fail every waiter on the key.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, compute func(ctx context.Context) (T, error), tags ...string) (T, error) {
	if v, ok := lookup[T](ctx, c, key); ok {
		return v, nil
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	ch := c.group.DoChan(key, func() (any, error) {
		shared := context.WithoutCancel(ctx)
		if v, ok := lookup[T](shared, c, key); ok {
			return v, nil
		}

		v, err := compute(shared)
		if err != nil {
			return v, err
		}
		c.put(shared, key, v, ttl, tags)
		return v, nil
	})

	var res any
	var err error
	select {
	case r := <-ch:
		res, err = r.Val, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

func lookup[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var v T

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "cache read failed, computing directly",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return v, false
	}
	if !ok {
		return v, false
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.WarnContext(ctx, "cache entry undecodable, recomputing",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return v, false
	}
	return v, true
}

func (c *Cache) put(ctx context.Context, key string, v any, ttl time.Duration, tags []string) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	// Tag before Set so no entry ever exists untagged.
	for _, tag := range tags {
		if err := c.store.Tag(ctx, tag, key); err != nil {
			c.log.WarnContext(ctx, "cache tag failed, not storing",
				slog.String("key", key),
				slog.String("tag", tag),
				slog.String("error", err.Error()),
			)
			return
		}
	}
	if err := c.store.Set(ctx, key, raw, ttl); err != nil {
		c.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Delete purges keys. Absent keys are not an error.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if err := c.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// InvalidateTag purges every key recorded under tag.
func (c *Cache) InvalidateTag(ctx context.Context, tag string) error {
	if err := c.store.InvalidateTag(ctx, tag); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", tag, err)
	}
	return nil
}
