package admission

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Scope names a quota bucket.
type Scope string

const (
	ScopeGeneral      Scope = "general"
	ScopeLogin        Scope = "login"
	ScopeBookCreation Scope = "book_creation"
	ScopeLoanCreation Scope = "loan_creation"
)

// KeyBy selects which client key a route-specific quota is counted under.
type KeyBy int

const (
	// KeyByClient counts under IP plus authenticated principal.
	KeyByClient KeyBy = iota
	// KeyByIP counts under the IP alone.
	KeyByIP
)

// Rule attaches a route-specific quota to an exact method and path.
type Rule struct {
	Method string
	Path   string
	Scope  Scope
	KeyBy  KeyBy
	// SkipGeneral exempts the route from the general quota.
	SkipGeneral bool
}

// DefaultRules are the route quotas of the circulation API.
func DefaultRules() []Rule {
	return []Rule{
		{Method: http.MethodPost, Path: "/api/auth/login", Scope: ScopeLogin, KeyBy: KeyByIP, SkipGeneral: true},
		{Method: http.MethodPost, Path: "/api/books", Scope: ScopeBookCreation, KeyBy: KeyByClient},
		{Method: http.MethodPost, Path: "/api/loans", Scope: ScopeLoanCreation, KeyBy: KeyByClient},
	}
}

// Rejection texts returned to throttled clients.
const (
	GeneralRejectionError   = "Too Many Requests"
	GeneralRejectionMessage = "Rate limit exceeded. Please try again later."
	RouteRejectionError     = "Rate Limit Exceeded"
	RouteRejectionMessage   = "You have exceeded the rate limit for this action."
)

// Result is the admission outcome of one request.
type Result struct {
	// Admitted is false only when a quota rejected the request.
	Admitted bool
	// Scope is the last quota consumed; empty when none applied.
	Scope    Scope
	Decision Decision
	Error    string
	Message  string
}

// Consumed reports whether any quota was counted for the request.
func (r Result) Consumed() bool { return r.Scope != "" }

// Options configures a Controller.
type Options struct {
	APIPrefix   string
	ExemptPaths []string
	Rules       []Rule
}

// Controller applies the general quota and route-specific quotas in order.
type Controller struct {
	resolver  *Resolver
	limiters  map[Scope]Limiter
	rules     map[string]Rule
	apiPrefix string
	exempt    []string
	log       *slog.Logger
}

// NewController creates a Controller. A scope without a limiter is not enforced.
func NewController(log *slog.Logger, resolver *Resolver, limiters map[Scope]Limiter, opts Options) *Controller {
	rules := make(map[string]Rule, len(opts.Rules))
	for _, r := range opts.Rules {
		rules[ruleKey(r.Method, r.Path)] = r
	}
	return &Controller{
		resolver:  resolver,
		limiters:  limiters,
		rules:     rules,
		apiPrefix: opts.APIPrefix,
		exempt:    opts.ExemptPaths,
		log:       log.With("component", "admission"),
	}
}

// Admit consumes quota for req. principal is the authenticated user id,
// or empty for anonymous requests.
func (c *Controller) Admit(ctx context.Context, req *http.Request, principal string) Result {
	path := req.URL.Path
	if c.isExempt(path) {
		return Result{Admitted: true}
	}

	result := Result{Admitted: true}
	rule, hasRule := c.rules[ruleKey(req.Method, path)]
	clientKey := c.resolver.ClientKey(req, principal)

	if strings.HasPrefix(path, c.apiPrefix) && !(hasRule && rule.SkipGeneral) {
		if d, ok := c.consume(ctx, ScopeGeneral, clientKey); ok {
			result.Scope, result.Decision = ScopeGeneral, d
			if !d.Allowed {
				return c.reject(ctx, result, clientKey, GeneralRejectionError, GeneralRejectionMessage)
			}
		}
	}

	if !hasRule {
		return result
	}

	key := clientKey
	if rule.KeyBy == KeyByIP {
		key = c.resolver.ClientIP(req)
	}
	if d, ok := c.consume(ctx, rule.Scope, key); ok {
		result.Scope, result.Decision = rule.Scope, d
		if !d.Allowed {
			return c.reject(ctx, result, key, RouteRejectionError, RouteRejectionMessage)
		}
	}

	return result
}

// consume returns false when the scope is not enforced. A limiter failure
// admits the request and is logged.
func (c *Controller) consume(ctx context.Context, scope Scope, key string) (Decision, bool) {
	l, ok := c.limiters[scope]
	if !ok {
		return Decision{}, false
	}
	d, err := l.Allow(ctx, key)
	if err != nil {
		c.log.ErrorContext(ctx, "limiter unavailable, admitting request",
			slog.String("scope", string(scope)),
			slog.String("error", err.Error()),
		)
		return Decision{}, false
	}
	return d, true
}

func (c *Controller) reject(ctx context.Context, r Result, key, errText, message string) Result {
	r.Admitted = false
	r.Error = errText
	r.Message = message
	c.log.WarnContext(ctx, "request throttled",
		slog.String("scope", string(r.Scope)),
		slog.String("client_key", key),
		slog.Time("retry_at", r.Decision.RetryAt),
	)
	return r
}

func (c *Controller) isExempt(path string) bool {
	for _, p := range c.exempt {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func ruleKey(method, path string) string {
	return method + " " + path
}
