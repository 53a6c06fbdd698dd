package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

const (
	loanCreatedSubject  = "Book Loan Confirmation"
	loanReturnedSubject = "Book Return Confirmation"
	loanPeriodDays      = 14
	dateLayout          = "2006-01-02"
	dateTimeLayout      = "2006-01-02 15:04:05"
)

// LoanCreated logs the new loan and mails a confirmation to the borrower.
func (s *Service) LoanCreated(ctx context.Context, e domain.LoanCreated) error {
	u, b, l := e.User, e.Book, e.Loan

	s.log.InfoContext(ctx,
		fmt.Sprintf("Loan created: User %s %s (%s) borrowed %q by %s", u.Name, u.Surname, u.Email, b.Title, b.Author),
		slog.String("event", e.Name()),
		slog.Int64("user_id", u.ID),
		slog.Int64("book_id", b.ID),
		slog.Int64("loan_id", l.ID),
		slog.String("loan_date", l.LoanDate.Format(dateTimeLayout)),
	)

	body := fmt.Sprintf("Dear %s,\n\nYou have successfully borrowed the following book:\n\n"+
		"Title: %s\nAuthor: %s\nISBN: %s\nLoan Date: %s\n\n"+
		"Please return the book within %d days.\n\nBest regards,\nLibrary Management System",
		u.Name, b.Title, b.Author, b.ISBN, l.LoanDate.Format(dateLayout), loanPeriodDays)

	return s.send(ctx, Email{To: u.Email, Subject: loanCreatedSubject, Body: body})
}

// LoanReturned logs the return and mails a thank-you to the borrower.
func (s *Service) LoanReturned(ctx context.Context, e domain.LoanReturned) error {
	u, b, l := e.User, e.Book, e.Loan

	returnDate := "Today"
	returnedAt := ""
	if l.ReturnedAt != nil {
		returnDate = l.ReturnedAt.Format(dateLayout)
		returnedAt = l.ReturnedAt.Format(dateTimeLayout)
	}

	s.log.InfoContext(ctx,
		fmt.Sprintf("Loan returned: User %s %s (%s) returned %q by %s", u.Name, u.Surname, u.Email, b.Title, b.Author),
		slog.String("event", e.Name()),
		slog.Int64("user_id", u.ID),
		slog.Int64("book_id", b.ID),
		slog.Int64("loan_id", l.ID),
		slog.String("return_date", returnedAt),
	)

	body := fmt.Sprintf("Dear %s,\n\nThank you for returning:\n\n"+
		"Title: %s\nAuthor: %s\nReturn Date: %s\n\n"+
		"We hope you enjoyed reading this book!\n\nBest regards,\nLibrary Management System",
		u.Name, b.Title, b.Author, returnDate)

	return s.send(ctx, Email{To: u.Email, Subject: loanReturnedSubject, Body: body})
}

func (s *Service) send(ctx context.Context, msg Email) error {
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: send %q to %s: %w", msg.Subject, msg.To, err)
	}
	return nil
}
