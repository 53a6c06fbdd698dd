package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Circulation errors. Each one wraps the sentinel that decides its class,
// so callers can match either the precise condition or the broad category.
var (
	ErrBookNotFound = fmt.Errorf("book not found: %w", ErrNotFound)
	ErrUserNotFound = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrLoanNotFound = fmt.Errorf("loan not found: %w", ErrNotFound)

	ErrDuplicateISBN       = fmt.Errorf("book with this ISBN already exists: %w", ErrConflict)
	ErrLoanAlreadyReturned = fmt.Errorf("book already returned: %w", ErrConflict)

	ErrLoanForOtherUser      = fmt.Errorf("you can only create loans for yourself: %w", ErrForbidden)
	ErrLoanForOtherLibrarian = fmt.Errorf("cannot create loans for other librarians: %w", ErrForbidden)
	ErrLoanHistoryDenied     = fmt.Errorf("you can only view your own loans: %w", ErrForbidden)
	ErrLibrarianOnly         = fmt.Errorf("librarian role required: %w", ErrForbidden)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
