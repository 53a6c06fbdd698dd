package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/circulation-backend/internal/domain"
	"github.com/heartmarshall/circulation-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Principal, error)
}

// Auth resolves a Bearer token into the request principal. Requests without
// a valid token pass through anonymously so admission still counts them;
// RequireAuth rejects them on protected routes.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			p, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), invalidTokenKey{}, true)))
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), p.UserID)
			ctx = ctxutil.WithUserRole(ctx, p.Role.String())
			if h := principalHolderFromCtx(ctx); h != nil {
				h.userID = p.UserID
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// principalHolder carries the authenticated user id back out to Logger,
// which wraps Auth and never sees the derived context.
type principalHolder struct {
	userID int64
}

type principalHolderKey struct{}

// invalidTokenKey marks a request whose bearer token failed validation.
type invalidTokenKey struct{}

func withPrincipalHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, principalHolderKey{}, h)
}

func principalHolderFromCtx(ctx context.Context) *principalHolder {
	h, _ := ctx.Value(principalHolderKey{}).(*principalHolder)
	return h
}

// RequireAuth rejects anonymous requests, including those with a rejected token, with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			msg := "JWT Token not found"
			if invalid, _ := r.Context().Value(invalidTokenKey{}).(bool); invalid {
				msg = "Invalid or expired token"
			}
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized", Message: msg})
			return
		}
		next.ServeHTTP(w, r)
	})
}
