package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// CreateUser validates input, hashes the password and stores the account.
// A taken email yields domain.ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash password: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Name:         strings.TrimSpace(input.Name),
		Surname:      strings.TrimSpace(input.Surname),
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", created.ID),
		slog.String("role", created.Role.String()),
	)

	return created, nil
}
