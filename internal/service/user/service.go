package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

// Service provisions user accounts.
type Service struct {
	log      *slog.Logger
	users    userRepo
	hashCost int
}

// NewService creates a new user service instance. hashCost is the bcrypt cost.
func NewService(logger *slog.Logger, users userRepo, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		hashCost: hashCost,
	}
}
