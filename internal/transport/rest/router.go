package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/circulation-backend/internal/transport/middleware"
)

// Handlers groups everything mounted by NewRouter. Dev is optional.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Books  *BookHandler
	Loans  *LoanHandler
	Dev    *DevHandler
}

// NewRouter builds the HTTP routing tree. global wraps every route in the
// given order; the /api tree additionally requires an authenticated caller,
// except for login.
func NewRouter(h Handlers, global ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	for _, mw := range global {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/books", h.Books.List)
			r.Post("/books", h.Books.Create)
			r.Get("/books/{id}", h.Books.Get)

			r.Post("/loans", h.Loans.Create)
			r.Put("/loans/{id}/return", h.Loans.Return)
			r.Patch("/loans/{id}/return", h.Loans.Return)

			r.Get("/users/{id}/loans", h.Loans.History)
		})
	})

	if h.Dev != nil {
		r.Post("/dev/create-user", h.Dev.CreateUsers)
	}

	return r
}
