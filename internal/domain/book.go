package domain

import "time"

// Book is a catalog title. ISBN is unique across the catalog.
type Book struct {
	ID              int64
	Title           string
	Author          string
	ISBN            string
	PublicationYear int
	NumberOfCopies  int
	CreatedAt       time.Time
}

// Catalog bounds shared by input validation and the list filter.
const (
	MinPublicationYear = 800
	MaxPublicationYear = 2100
	MinISBNLength      = 10
	MaxISBNLength      = 17
	MaxTitleLength     = 255
)

// IsValidISBN reports whether s has 10 to 17 characters made of digits, dashes or X.
func IsValidISBN(s string) bool {
	if len(s) < MinISBNLength || len(s) > MaxISBNLength {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && c != '-' && c != 'X' {
			return false
		}
	}
	return true
}
