package circulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/config"
	"github.com/heartmarshall/circulation-backend/internal/domain"
	"github.com/heartmarshall/circulation-backend/pkg/ctxutil"
)

type loanRepo interface {
	Create(ctx context.Context, l domain.Loan) (*domain.Loan, error)
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	MarkReturned(ctx context.Context, id int64, returnedAt time.Time) (*domain.Loan, error)
	ListByUser(ctx context.Context, q domain.LoanHistoryQuery) ([]domain.Loan, int, error)
}

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event)
}

// Service runs the loan lifecycle: lending, returning and history reads.
type Service struct {
	log    *slog.Logger
	loans  loanRepo
	books  bookRepo
	users  userRepo
	tx     txManager
	cache  *cache.Cache
	events publisher
	ttl    config.CacheConfig
	now    func() time.Time
}

// NewService creates a new circulation service instance.
func NewService(
	logger *slog.Logger,
	loans loanRepo,
	books bookRepo,
	users userRepo,
	tx txManager,
	c *cache.Cache,
	events publisher,
	ttl config.CacheConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "circulation"),
		loans:  loans,
		books:  books,
		users:  users,
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

// invalidate purges the borrower's leading history pages and the book detail.
// The loan is already committed, so failures are only logged.
func (s *Service) invalidate(ctx context.Context, userID, bookID int64) {
	keys := cache.LoanMutationKeys(userID, bookID, s.ttl.LoanHistoryPages)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.ErrorContext(ctx, "loan cache invalidation failed",
			slog.Int64("user_id", userID),
			slog.Int64("book_id", bookID),
			slog.String("error", err.Error()),
		)
	}
}
