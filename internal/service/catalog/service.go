package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/config"
	"github.com/heartmarshall/circulation-backend/internal/domain"
	"github.com/heartmarshall/circulation-backend/pkg/ctxutil"
)

// bookRepo defines the book repository interface needed by catalog service.
type bookRepo interface {
	Create(ctx context.Context, b domain.Book) (*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	List(ctx context.Context, f domain.BookFilter) ([]domain.Book, int, error)
}

// txManager runs fn in one database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// publisher defines the event sink needed by catalog service.
type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// Service implements catalog reads and librarian catalog management.
type Service struct {
	log    *slog.Logger
	books  bookRepo
	tx     txManager
	cache  *cache.Cache
	events publisher
	ttl    config.CacheConfig
	now    func() time.Time
}

// NewService creates a new catalog service instance.
func NewService(
	logger *slog.Logger,
	books bookRepo,
	tx txManager,
	c *cache.Cache,
	events publisher,
	ttl config.CacheConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "catalog"),
		books:  books,
		tx:     tx,
		cache:  c,
		events: events,
		ttl:    ttl,
		now:    time.Now,
	}
}

func principalFromCtx(ctx context.Context) (domain.Principal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return domain.Principal{UserID: userID, Role: domain.UserRole(ctxutil.UserRoleFromCtx(ctx))}, nil
}
