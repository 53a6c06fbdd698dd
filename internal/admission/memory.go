package admission

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/heartmarshall/circulation-backend/internal/config"
)

// MemoryLimiter keeps per-key counters in process memory.
// Idle counters are evicted by a background goroutine; call Stop on shutdown.
type MemoryLimiter struct {
	quota    config.QuotaConfig
	counters sync.Map // map[string]counter
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// counter is one (client, scope) quota state.
type counter interface {
	take(now time.Time) Decision
	idleSince() time.Time
}

// NewMemoryLimiter creates an in-process limiter for one quota scope.
func NewMemoryLimiter(quota config.QuotaConfig, cleanupInterval time.Duration) (*MemoryLimiter, error) {
	if err := validateQuota(quota); err != nil {
		return nil, err
	}
	l := &MemoryLimiter{
		quota: quota,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go l.cleanup(cleanupInterval)
	}
	return l, nil
}

// Stop terminates the background cleanup goroutine.
func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Allow consumes one token for key.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()
	c, ok := l.counters.Load(key)
	if !ok {
		c, _ = l.counters.LoadOrStore(key, l.newCounter(now))
	}
	return c.(counter).take(now), nil
}

func (l *MemoryLimiter) newCounter(now time.Time) counter {
	if l.quota.Policy == config.PolicyTokenBucket {
		limit := float64(l.quota.Limit)
		return &bucket{
			tokens:     limit,
			maxTokens:  limit,
			interval:   max(l.quota.Window/time.Duration(l.quota.Limit), time.Nanosecond),
			lastRefill: now,
		}
	}
	return &window{
		limit:  l.quota.Limit,
		length: l.quota.Window,
		start:  now,
	}
}

func (l *MemoryLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictIdle(l.now())
		}
	}
}

// evictIdle drops counters untouched for a full window; their state would
// have reset anyway.
func (l *MemoryLimiter) evictIdle(now time.Time) {
	l.counters.Range(func(key, value any) bool {
		if now.Sub(value.(counter).idleSince()) > l.quota.Window {
			l.counters.Delete(key)
		}
		return true
	})
}

// bucket is a token bucket refilled continuously, one token per interval.
type bucket struct {
	tokens     float64
	maxTokens  float64
	interval   time.Duration
	lastRefill time.Time
	mu         sync.Mutex
}

func (b *bucket) take(now time.Time) Decision {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.lastRefill); elapsed > 0 {
		b.tokens = math.Min(b.maxTokens, b.tokens+float64(elapsed)/float64(b.interval))
		b.lastRefill = now
	}

	d := Decision{Allowed: b.tokens >= 1}
	if d.Allowed {
		b.tokens--
	} else {
		d.RetryAt = now.Add(b.timeFor(1 - b.tokens))
	}
	d.Quota = Quota{
		Limit:     int(b.maxTokens),
		Remaining: int(math.Floor(b.tokens)),
		ResetAt:   now.Add(b.timeFor(b.maxTokens - b.tokens)),
	}
	return d
}

// timeFor returns how long it takes to refill n tokens.
func (b *bucket) timeFor(n float64) time.Duration {
	return time.Duration(math.Ceil(n * float64(b.interval)))
}

func (b *bucket) idleSince() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastRefill
}

// window is a fixed window counter that restarts once length has elapsed.
type window struct {
	limit    int
	length   time.Duration
	start    time.Time
	count    int
	lastSeen time.Time
	mu       sync.Mutex
}

func (w *window) take(now time.Time) Decision {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !now.Before(w.start.Add(w.length)) {
		w.start = now
		w.count = 0
	}
	w.lastSeen = now
	resetAt := w.start.Add(w.length)

	d := Decision{Allowed: w.count < w.limit}
	if d.Allowed {
		w.count++
	} else {
		d.RetryAt = resetAt
	}
	d.Quota = Quota{
		Limit:     w.limit,
		Remaining: w.limit - w.count,
		ResetAt:   resetAt,
	}
	return d
}

func (w *window) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastSeen.IsZero() {
		return w.start
	}
	return w.lastSeen
}
