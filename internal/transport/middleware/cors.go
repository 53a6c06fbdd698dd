package middleware

import (
	"github.com/go-chi/cors"

	"github.com/heartmarshall/circulation-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing,
// answering preflight OPTIONS requests itself.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.ParseList(cfg.AllowedOrigins),
		AllowedMethods:   config.ParseList(cfg.AllowedMethods),
		AllowedHeaders:   config.ParseList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader, HeaderRateLimitLimit, HeaderRateLimitRemaining, HeaderRateLimitReset},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
