package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

// CreateBookInput holds parameters for adding a book to the catalog.
type CreateBookInput struct {
	Title  string
	Author string
	ISBN   string
	Year   int
	Copies int
}

func (i *CreateBookInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Author = strings.TrimSpace(i.Author)
	i.ISBN = strings.TrimSpace(i.ISBN)
}

// Validate validates the create book input.
func (i CreateBookInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title is required"})
	} else if utf8.RuneCountInString(i.Title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title cannot be longer than 255 characters"})
	}

	if i.Author == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "Author is required"})
	} else if utf8.RuneCountInString(i.Author) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "Author cannot be longer than 255 characters"})
	}

	switch {
	case i.ISBN == "":
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "ISBN is required"})
	case len(i.ISBN) < domain.MinISBNLength:
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "ISBN must be at least 10 characters"})
	case len(i.ISBN) > domain.MaxISBNLength:
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "ISBN cannot be longer than 17 characters"})
	case !domain.IsValidISBN(i.ISBN):
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "ISBN may contain only digits, dashes and X"})
	}

	if i.Year < domain.MinPublicationYear || i.Year > domain.MaxPublicationYear {
		errs = append(errs, domain.FieldError{Field: "year", Message: "Year must be between 800 and 2100"})
	}

	if i.Copies < 1 {
		errs = append(errs, domain.FieldError{Field: "copies", Message: "Copies must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidateFilter checks listing filters. A zero Page means page 1.
func ValidateFilter(f domain.BookFilter) error {
	var errs []domain.FieldError

	if f.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "pageNumber", Message: "Page number must be at least 1"})
	}
	if utf8.RuneCountInString(f.Title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "Title filter cannot be longer than 255 characters"})
	}
	if utf8.RuneCountInString(f.Author) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "Author filter cannot be longer than 255 characters"})
	}
	if len(f.ISBN) > domain.MaxISBNLength {
		errs = append(errs, domain.FieldError{Field: "isbn", Message: "ISBN cannot be longer than 17 characters"})
	}
	if f.Year != 0 && (f.Year < domain.MinPublicationYear || f.Year > domain.MaxPublicationYear) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "Year must be between 800 and 2100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
