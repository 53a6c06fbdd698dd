package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// CreateLoan lends a book to a user. Members may borrow only for themselves;
// librarians may not borrow on behalf of another librarian.
// Caches are invalidated and LoanCreated published only after commit.
func (s *Service) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	requester, err := principalFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		book *domain.Book
		user *domain.User
		loan *domain.Loan
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.books.GetByID(ctx, input.BookID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrBookNotFound
			}
			return fmt.Errorf("get book: %w", err)
		}

		user, err = s.users.GetByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("get user: %w", err)
		}

		if err := domain.CanCreateLoan(requester, user); err != nil {
			s.log.WarnContext(ctx, "loan creation denied",
				slog.Int64("requester_id", requester.UserID),
				slog.Int64("target_user_id", user.ID),
				slog.String("reason", err.Error()),
			)
			return err
		}

		loan, err = s.loans.Create(ctx, *domain.NewLoan(book.ID, user.ID, s.now()))
		if err != nil {
			return fmt.Errorf("create loan: %w", err)
		}
		return nil
	})
	if err != nil {
		if isDomainOutcome(err) {
			return nil, err
		}
		return nil, fmt.Errorf("circulation.CreateLoan: %w", err)
	}

	s.invalidate(ctx, user.ID, book.ID)
	s.events.Publish(ctx, domain.LoanCreated{
		EventMeta: domain.NewEventMeta(s.now()),
		Loan:      *loan,
		Book:      *book,
		User:      *user,
	})

	s.log.InfoContext(ctx, "loan created",
		slog.Int64("loan_id", loan.ID),
		slog.Int64("book_id", book.ID),
		slog.Int64("user_id", user.ID),
		slog.Int64("requester_id", requester.UserID),
	)

	return loan, nil
}

// isDomainOutcome reports errors that are returned to the caller as is.
func isDomainOutcome(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrConflict)
}
