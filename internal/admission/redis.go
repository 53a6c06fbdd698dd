package admission

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/circulation-backend/internal/config"
)

// fixedWindowScript checks the counter before incrementing so that a
// rejected request never consumes quota. The window starts at the first
// admitted request of a key and ends when the key expires.
const fixedWindowScript = `
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = tonumber(redis.call("GET", key) or "0")
if current >= limit then
    local ttl = redis.call("PTTL", key)
    return {0, current, ttl}
end

local newVal = redis.call("INCR", key)
local ttl = redis.call("PTTL", key)
if newVal == 1 or ttl < 0 then
    redis.call("PEXPIRE", key, window)
    ttl = window
end

return {1, newVal, ttl}
`

// tokenBucketScript refills a hash-backed bucket from the caller's clock.
// Token counts are returned as strings to keep their fractional part.
const tokenBucketScript = `
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local interval = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call("HMGET", key, "tokens", "ts")
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
    tokens = capacity
    ts = now
end

if now > ts then
    tokens = math.min(capacity, tokens + (now - ts) / interval)
    ts = now
end

local allowed = 0
if tokens >= 1 then
    tokens = tokens - 1
    allowed = 1
end

redis.call("HSET", key, "tokens", tostring(tokens), "ts", tostring(ts))
redis.call("PEXPIRE", key, ttl)

return {allowed, tostring(tokens)}
`

// RedisLimiter keeps quota state in Redis so that several server instances
// share one budget per client.
type RedisLimiter struct {
	client *redis.Client
	scope  string
	quota  config.QuotaConfig
	script *redis.Script
	now    func() time.Time
}

// NewRedisLimiter creates a Redis-backed limiter for one quota scope.
func NewRedisLimiter(client *redis.Client, scope string, quota config.QuotaConfig) (*RedisLimiter, error) {
	if err := validateQuota(quota); err != nil {
		return nil, err
	}
	script := redis.NewScript(fixedWindowScript)
	if quota.Policy == config.PolicyTokenBucket {
		script = redis.NewScript(tokenBucketScript)
	}
	return &RedisLimiter{
		client: client,
		scope:  scope,
		quota:  quota,
		script: script,
		now:    time.Now,
	}, nil
}

// Allow consumes one token for key.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := fmt.Sprintf("ratelimit:%s:%s", l.scope, key)
	if l.quota.Policy == config.PolicyTokenBucket {
		return l.allowTokenBucket(ctx, redisKey)
	}
	return l.allowFixedWindow(ctx, redisKey)
}

func (l *RedisLimiter) allowFixedWindow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	result, err := l.script.Run(ctx, l.client, []string{key},
		l.quota.Limit,
		l.quota.Window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check %s: %w", l.scope, err)
	}
	if len(result) != 3 {
		return Decision{}, fmt.Errorf("rate limit check %s: unexpected reply %v", l.scope, result)
	}

	count, ttl := int(result[1]), time.Duration(result[2])*time.Millisecond
	if ttl < 0 {
		ttl = l.quota.Window
	}
	resetAt := now.Add(ttl)

	d := Decision{
		Allowed: result[0] == 1,
		Quota: Quota{
			Limit:     l.quota.Limit,
			Remaining: max(l.quota.Limit-count, 0),
			ResetAt:   resetAt,
		},
	}
	if !d.Allowed {
		d.RetryAt = resetAt
	}
	return d, nil
}

func (l *RedisLimiter) allowTokenBucket(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	interval := max(l.quota.Window/time.Duration(l.quota.Limit), time.Millisecond)

	result, err := l.script.Run(ctx, l.client, []string{key},
		l.quota.Limit,
		interval.Milliseconds(),
		now.UnixMilli(),
		l.quota.Window.Milliseconds(),
	).Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check %s: %w", l.scope, err)
	}
	if len(result) != 2 {
		return Decision{}, fmt.Errorf("rate limit check %s: unexpected reply %v", l.scope, result)
	}

	allowed, _ := result[0].(int64)
	raw, _ := result[1].(string)
	tokens, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check %s: parse tokens %q: %w", l.scope, raw, err)
	}

	timeFor := func(n float64) time.Duration {
		return time.Duration(math.Ceil(n * float64(interval)))
	}

	d := Decision{
		Allowed: allowed == 1,
		Quota: Quota{
			Limit:     l.quota.Limit,
			Remaining: int(math.Floor(tokens)),
			ResetAt:   now.Add(timeFor(float64(l.quota.Limit) - tokens)),
		},
	}
	if !d.Allowed {
		d.RetryAt = now.Add(timeFor(1 - tokens))
	}
	return d, nil
}
