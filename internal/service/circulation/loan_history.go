package circulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/circulation-backend/internal/cache"
	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// LoanHistory returns a page of a user's loans, newest first. Members see
// only their own history. Pages at the default limit are cached.
func (s *Service) LoanHistory(ctx context.Context, q domain.LoanHistoryQuery) (*domain.LoanPage, error) {
	requester, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	q, err = normalizeHistoryQuery(q)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, q.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("circulation.LoanHistory get user: %w", err)
	}

	if err := domain.CanViewLoanHistory(requester, q.UserID); err != nil {
		return nil, err
	}

	load := func(ctx context.Context) (domain.LoanPage, error) {
		loans, total, err := s.loans.ListByUser(ctx, q)
		if err != nil {
			return domain.LoanPage{}, err
		}
		if loans == nil {
			loans = []domain.Loan{}
		}
		return domain.LoanPage{
			Loans: loans,
			Pagination: domain.Pagination{
				CurrentPage: q.Page,
				TotalPages:  domain.TotalPages(total, q.Limit),
				TotalCount:  total,
				Limit:       q.Limit,
			},
		}, nil
	}

	var page domain.LoanPage
	if q.Limit == domain.DefaultLoanHistoryLimit {
		page, err = cache.GetOrCompute(ctx, s.cache, cache.UserLoansKey(q.UserID, q.Page), s.ttl.UserLoansTTL, load)
	} else {
		page, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("circulation.LoanHistory: %w", err)
	}

	return &page, nil
}
