package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event names as they appear in logs and notification envelopes.
const (
	EventBookCreated  = "book.created"
	EventLoanCreated  = "loan.created"
	EventLoanReturned = "loan.returned"
)

// EventMeta identifies one emitted event.
type EventMeta struct {
	ID         uuid.UUID
	OccurredAt time.Time
}

// NewEventMeta stamps a fresh event id at now.
func NewEventMeta(now time.Time) EventMeta {
	return EventMeta{ID: uuid.New(), OccurredAt: now}
}

// Event is a fact about a committed circulation mutation.
type Event interface {
	Name() string
	Meta() EventMeta
}

type BookCreated struct {
	EventMeta
	Book Book
}

func (e BookCreated) Name() string    { return EventBookCreated }
func (e BookCreated) Meta() EventMeta { return e.EventMeta }

// LoanCreated carries the loan with the book and borrower it links.
type LoanCreated struct {
	EventMeta
	Loan Loan
	Book Book
	User User
}

func (e LoanCreated) Name() string    { return EventLoanCreated }
func (e LoanCreated) Meta() EventMeta { return e.EventMeta }

type LoanReturned struct {
	EventMeta
	Loan Loan
	Book Book
	User User
}

func (e LoanReturned) Name() string    { return EventLoanReturned }
func (e LoanReturned) Meta() EventMeta { return e.EventMeta }
