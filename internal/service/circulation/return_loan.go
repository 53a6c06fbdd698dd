package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// ReturnLoan closes a loan. Librarians only. A loan is returned at most once;
// a second attempt fails with ErrLoanAlreadyReturned and leaves returnedAt as is.
func (s *Service) ReturnLoan(ctx context.Context, loanID int64) (*domain.Loan, error) {
	requester, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReturnLoan(requester); err != nil {
		return nil, err
	}
	if loanID <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	var returned *domain.Loan
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		loan, err := s.loans.GetByID(ctx, loanID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrLoanNotFound
			}
			return fmt.Errorf("get loan: %w", err)
		}

		now := s.now()
		// Checked here for a clean error; MarkReturned guards the concurrent case.
		if err := loan.Return(now); err != nil {
			return err
		}

		returned, err = s.loans.MarkReturned(ctx, loan.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrLoanAlreadyReturned) {
				return domain.ErrLoanAlreadyReturned
			}
			return fmt.Errorf("mark returned: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDomainOutcome(err) {
			return nil, err
		}
		return nil, fmt.Errorf("circulation.ReturnLoan: %w", err)
	}

	s.invalidate(ctx, returned.UserID, returned.BookID)
	s.publishReturned(ctx, *returned)

	s.log.InfoContext(ctx, "loan returned",
		slog.Int64("loan_id", returned.ID),
		slog.Int64("book_id", returned.BookID),
		slog.Int64("user_id", returned.UserID),
		slog.Int64("librarian_id", requester.UserID),
	)

	return returned, nil
}

// publishReturned enriches the event with the book and borrower. Lookup
// failures are logged and the event goes out with whatever was found.
func (s *Service) publishReturned(ctx context.Context, loan domain.Loan) {
	e := domain.LoanReturned{EventMeta: domain.NewEventMeta(s.now()), Loan: loan}

	if book, err := s.books.GetByID(ctx, loan.BookID); err == nil {
		e.Book = *book
	} else {
		s.log.WarnContext(ctx, "loan returned: book lookup failed",
			slog.Int64("book_id", loan.BookID),
			slog.String("error", err.Error()),
		)
	}
	if user, err := s.users.GetByID(ctx, loan.UserID); err == nil {
		e.User = *user
	} else {
		s.log.WarnContext(ctx, "loan returned: user lookup failed",
			slog.Int64("user_id", loan.UserID),
			slog.String("error", err.Error()),
		)
	}

	s.events.Publish(ctx, e)
}
