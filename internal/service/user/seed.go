package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// DevPassword is the password of every development account.
const DevPassword = "Qwer123!"

// DevUsers are the accounts created by SeedDevUsers.
var DevUsers = []CreateUserInput{
	{Name: "Admin", Surname: "User", Email: "admin@example.com", Password: DevPassword, Role: domain.UserRoleLibrarian},
	{Name: "Test", Surname: "tested", Email: "test@example.com", Password: DevPassword, Role: domain.UserRoleMember},
}

// SeedResult reports what SeedDevUsers did for one account.
type SeedResult struct {
	User    *domain.User
	Created bool
}

// SeedDevUsers creates the development accounts. Accounts whose email is
// already registered are returned unchanged.
func (s *Service) SeedDevUsers(ctx context.Context) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(DevUsers))

	for _, in := range DevUsers {
		existing, err := s.users.GetByEmail(ctx, in.Email)
		if err == nil {
			results = append(results, SeedResult{User: existing})
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user.SeedDevUsers lookup %s: %w", in.Email, err)
		}

		created, err := s.CreateUser(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("user.SeedDevUsers: %w", err)
		}
		results = append(results, SeedResult{User: created, Created: true})
	}

	return results, nil
}
