package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/circulation-backend/internal/admission"
	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/config"
	"github.com/heartmarshall/circulation-backend/internal/transport/rest"
)

// buildLimiters creates one limiter per quota scope on the configured backend.
// The returned stop func releases background goroutines.
func buildLimiters(cfg config.RateLimitConfig, rdb *redis.Client) (map[admission.Scope]admission.Limiter, func(), error) {
	quotas := map[admission.Scope]config.QuotaConfig{
		admission.ScopeGeneral:      cfg.General(),
		admission.ScopeLogin:        cfg.Login(),
		admission.ScopeBookCreation: cfg.BookCreation(),
		admission.ScopeLoanCreation: cfg.LoanCreation(),
	}

	limiters := make(map[admission.Scope]admission.Limiter, len(quotas))
	var stops []func()
	stopAll := func() {
		for _, stop := range stops {
			stop()
		}
	}

	for scope, q := range quotas {
		switch cfg.Backend {
		case config.BackendRedis:
			if rdb == nil {
				return nil, stopAll, fmt.Errorf("rate limit: redis backend selected but redis is not configured")
			}
			l, err := admission.NewRedisLimiter(rdb, string(scope), q)
			if err != nil {
				return nil, stopAll, fmt.Errorf("rate limit %s: %w", scope, err)
			}
			limiters[scope] = l
		default:
			l, err := admission.NewMemoryLimiter(q, cfg.CleanupInterval)
			if err != nil {
				stopAll()
				return nil, func() {}, fmt.Errorf("rate limit %s: %w", scope, err)
			}
			stops = append(stops, l.Stop)
			limiters[scope] = l
		}
	}

	return limiters, stopAll, nil
}

// buildCacheStore selects the cache backend.
func buildCacheStore(cfg config.CacheConfig, rdb *redis.Client) (cache.Store, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		if rdb == nil {
			return nil, func() {}, fmt.Errorf("cache: redis backend selected but redis is not configured")
		}
		return cache.NewRedisStore(rdb, cfg.KeyPrefix), func() {}, nil
	default:
		s := cache.NewMemoryStore(cfg.CleanupInterval)
		return s, s.Stop, nil
	}
}

func healthComponents(pool *pgxpool.Pool, rdb *redis.Client) []rest.Component {
	components := []rest.Component{{Name: "database", Pinger: pool}}
	if rdb != nil {
		components = append(components, rest.Component{
			Name: "redis",
			Pinger: rest.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
		})
	}
	return components
}
