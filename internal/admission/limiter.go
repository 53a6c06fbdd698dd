// Package admission decides whether an inbound request may proceed, based
// on per-client quotas counted in independent scopes.
package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/circulation-backend/internal/config"
)

// Quota is the limiter state reported back to the client.
type Quota struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Decision is the outcome of consuming one token.
type Decision struct {
	Allowed bool
	Quota   Quota
	// RetryAt is the earliest time a rejected caller may succeed.
	RetryAt time.Time
}

// Limiter consumes one token for key. Check-and-consume is atomic per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// validateQuota rejects quotas that cannot produce a meaningful limiter.
func validateQuota(q config.QuotaConfig) error {
	if q.Limit <= 0 {
		return fmt.Errorf("limit must be > 0 (got %d)", q.Limit)
	}
	if q.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", q.Window)
	}
	switch q.Policy {
	case config.PolicyTokenBucket, config.PolicyFixedWindow:
		return nil
	default:
		return fmt.Errorf("unknown policy %q", q.Policy)
	}
}
