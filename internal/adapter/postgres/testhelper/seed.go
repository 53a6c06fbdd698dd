package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueISBN returns a syntactically valid ISBN unlikely to collide across tests.
func UniqueISBN() string {
	return fmt.Sprintf("979-%010d", uuid.New().ID())
}

// SeedUser inserts a user with the given role and returns it with its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		Name:         "Test",
		Surname:      "User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		Role:         role,
		PasswordHash: "not-a-real-hash",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, surname, email, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		user.Name, user.Surname, user.Email, string(user.Role), user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedBook inserts a book with the given title and a unique ISBN.
func SeedBook(t *testing.T, pool *pgxpool.Pool, title string) domain.Book {
	t.Helper()

	book := domain.Book{
		Title:           title,
		Author:          "Author " + uniqueSuffix(),
		ISBN:            UniqueISBN(),
		PublicationYear: 1999,
		NumberOfCopies:  1,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO books (title, author, isbn, publication_year, number_of_copies)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		book.Title, book.Author, book.ISBN, book.PublicationYear, book.NumberOfCopies,
	).Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return book
}

// SeedLoan inserts a LENT loan dated loanDate.
func SeedLoan(t *testing.T, pool *pgxpool.Pool, bookID, userID int64, loanDate time.Time) domain.Loan {
	t.Helper()

	loan := domain.NewLoan(bookID, userID, loanDate.UTC().Truncate(time.Microsecond))

	err := pool.QueryRow(context.Background(),
		`INSERT INTO loans (book_id, user_id, loan_date, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		loan.BookID, loan.UserID, loan.LoanDate, string(loan.Status),
	).Scan(&loan.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLoan: %v", err)
	}

	return *loan
}
