package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/circulation-backend/internal/admission"
	"github.com/heartmarshall/circulation-backend/pkg/ctxutil"
)

// Quota headers attached to every response that consumed a quota.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

type admitter interface {
	Admit(ctx context.Context, req *http.Request, principal string) admission.Result
}

type rejectionBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int64  `json:"retry_after"`
}

// Admission runs the admission controller before the route. Rejected requests
// get 429 with retry guidance; admitted ones carry the quota headers of the
// last scope consumed. Must run after Auth so the principal is known.
func Admission(ctrl admitter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var principal string
			if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				principal = strconv.FormatInt(id, 10)
			}

			res := ctrl.Admit(r.Context(), r, principal)
			if res.Consumed() {
				setQuotaHeaders(w.Header(), res.Decision.Quota)
			}

			if !res.Admitted {
				retryAt := res.Decision.RetryAt
				if wait := time.Until(retryAt); wait > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds()+0.999)))
				}
				writeJSON(w, http.StatusTooManyRequests, rejectionBody{
					Error:      res.Error,
					Message:    res.Message,
					RetryAfter: retryAt.Unix(),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setQuotaHeaders(h http.Header, q admission.Quota) {
	h.Set(HeaderRateLimitLimit, strconv.Itoa(q.Limit))
	h.Set(HeaderRateLimitRemaining, strconv.Itoa(q.Remaining))
	h.Set(HeaderRateLimitReset, strconv.FormatInt(q.ResetAt.Unix(), 10))
}
