package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Events.BufferSize <= 0 {
		return fmt.Errorf("events.buffer_size must be > 0 (got %d)", c.Events.BufferSize)
	}

	if (c.RateLimit.Backend == BackendRedis || c.Cache.Backend == BackendRedis) && c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required when a redis backend is selected")
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if err := validateBackend(r.Backend); err != nil {
		return err
	}
	if !strings.HasPrefix(r.APIPrefix, "/") {
		return fmt.Errorf("api_prefix must start with / (got %q)", r.APIPrefix)
	}

	scopes := map[string]QuotaConfig{
		"general":       r.General(),
		"login":         r.Login(),
		"book_creation": r.BookCreation(),
		"loan_creation": r.LoanCreation(),
	}
	for name, q := range scopes {
		if q.Limit <= 0 {
			return fmt.Errorf("%s_limit must be > 0 (got %d)", name, q.Limit)
		}
		if q.Window <= 0 {
			return fmt.Errorf("%s_window must be > 0 (got %s)", name, q.Window)
		}
		if q.Policy != PolicyTokenBucket && q.Policy != PolicyFixedWindow {
			return fmt.Errorf("%s_policy must be %s or %s (got %q)", name, PolicyTokenBucket, PolicyFixedWindow, q.Policy)
		}
	}

	r.ExemptPaths = ParseList(r.ExemptPathsRaw)
	return nil
}

func (c *CacheConfig) validate() error {
	if err := validateBackend(c.Backend); err != nil {
		return err
	}
	if c.DefaultTTL <= 0 || c.BooksListTTL <= 0 || c.BookDetailTTL <= 0 || c.UserLoansTTL <= 0 {
		return fmt.Errorf("all ttls must be > 0")
	}
	if c.LoanHistoryPages <= 0 {
		return fmt.Errorf("loan_history_pages must be > 0 (got %d)", c.LoanHistoryPages)
	}
	return nil
}

func validateBackend(b string) error {
	if b != BackendMemory && b != BackendRedis {
		return fmt.Errorf("backend must be %s or %s (got %q)", BackendMemory, BackendRedis, b)
	}
	return nil
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	return items
}
