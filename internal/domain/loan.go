package domain

import "time"

// Loan records one Book lent to one User.
//
// A loan starts LENT and moves to RETURNED exactly once. OVERDUE and LOST
// are assigned by processes outside circulation and can still be returned.
// ReturnedAt is set if and only if Status is RETURNED.
type Loan struct {
	ID         int64
	BookID     int64
	UserID     int64
	LoanDate   time.Time
	Status     LoanStatus
	ReturnedAt *time.Time
}

// NewLoan builds a fresh LENT loan dated now.
func NewLoan(bookID, userID int64, now time.Time) *Loan {
	return &Loan{
		BookID:   bookID,
		UserID:   userID,
		LoanDate: now,
		Status:   LoanStatusLent,
	}
}

// IsReturned reports whether the loan has reached its terminal state.
func (l *Loan) IsReturned() bool {
	return l.Status == LoanStatusReturned
}

// Return closes the loan at now. A loan that is already returned is left
// untouched and ErrLoanAlreadyReturned is reported.
func (l *Loan) Return(now time.Time) error {
	if l.IsReturned() {
		return ErrLoanAlreadyReturned
	}
	returnedAt := now
	l.ReturnedAt = &returnedAt
	l.Status = LoanStatusReturned
	return nil
}
