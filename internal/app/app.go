package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/circulation-backend/internal/adapter/postgres"
	bookrepo "github.com/heartmarshall/circulation-backend/internal/adapter/postgres/book"
	loanrepo "github.com/heartmarshall/circulation-backend/internal/adapter/postgres/loan"
	userrepo "github.com/heartmarshall/circulation-backend/internal/adapter/postgres/user"
	redisclient "github.com/heartmarshall/circulation-backend/internal/adapter/redis"
	"github.com/heartmarshall/circulation-backend/internal/admission"
	"github.com/heartmarshall/circulation-backend/internal/auth"
	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/config"
	"github.com/heartmarshall/circulation-backend/internal/events"
	authsvc "github.com/heartmarshall/circulation-backend/internal/service/auth"
	"github.com/heartmarshall/circulation-backend/internal/service/catalog"
	"github.com/heartmarshall/circulation-backend/internal/service/circulation"
	"github.com/heartmarshall/circulation-backend/internal/service/notification"
	usersvc "github.com/heartmarshall/circulation-backend/internal/service/user"
	"github.com/heartmarshall/circulation-backend/internal/transport/middleware"
	"github.com/heartmarshall/circulation-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("rate_limit_backend", cfg.RateLimit.Backend),
		slog.String("cache_backend", cfg.Cache.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = redisclient.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer rdb.Close() //nolint:errcheck
	}

	limiters, stopLimiters, err := buildLimiters(cfg.RateLimit, rdb)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer stopLimiters()

	store, stopStore, err := buildCacheStore(cfg.Cache, rdb)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer stopStore()
	readCache := cache.New(store, logger, cache.WithDefaultTTL(cfg.Cache.DefaultTTL))

	bus := events.NewBus(logger, cfg.Events.BufferSize, notification.NewService(logger, nil))

	// Repositories
	books := bookrepo.New(pool)
	users := userrepo.New(pool)
	loans := loanrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager)
	catalogService := catalog.NewService(logger, books, txm, readCache, bus, cfg.Cache)
	circulationService := circulation.NewService(logger, loans, books, users, txm, readCache, bus, cfg.Cache)

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), healthComponents(pool, rdb)...),
		Auth:   rest.NewAuthHandler(authService, logger),
		Books:  rest.NewBookHandler(catalogService, logger),
		Loans:  rest.NewLoanHandler(circulationService, logger),
	}
	if cfg.Server.DevEndpoints {
		handlers.Dev = rest.NewDevHandler(usersvc.NewService(logger, users, cfg.Auth.PasswordHashCost), logger)
		logger.Warn("development endpoints enabled")
	}

	controller := admission.NewController(logger, admission.NewResolver(), limiters, admission.Options{
		APIPrefix:   cfg.RateLimit.APIPrefix,
		ExemptPaths: cfg.RateLimit.ExemptPaths,
		Rules:       admission.DefaultRules(),
	})

	router := rest.NewRouter(handlers,
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Admission(controller),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := bus.Close(drainCtx); err != nil {
		logger.Warn("event bus drain incomplete", slog.String("error", err.Error()))
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return fmt.Errorf("app: %w", serveErr)
	}
	logger.Info("application stopped")
	return nil
}
