package circulation

import "github.com/heartmarshall/circulation-backend/internal/domain"

// CreateLoanInput holds parameters for lending a book.
type CreateLoanInput struct {
	BookID int64
	UserID int64
}

// Validate validates the create loan input.
func (i CreateLoanInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID <= 0 {
		errs = append(errs, domain.FieldError{Field: "bookId", Message: "Book ID is required"})
	}
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "User ID is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizeHistoryQuery fills the default limit and checks bounds.
func normalizeHistoryQuery(q domain.LoanHistoryQuery) (domain.LoanHistoryQuery, error) {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = domain.DefaultLoanHistoryLimit
	}

	var errs []domain.FieldError
	if q.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "User ID must be positive"})
	}
	if q.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "Page must be at least 1"})
	}
	if q.Limit < 1 || q.Limit > domain.MaxLoanHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "Limit must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return q, &domain.ValidationError{Errors: errs}
	}
	return q, nil
}
