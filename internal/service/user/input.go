package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/circulation-backend/internal/domain"
)

const (
	maxNameLength     = 255
	minPasswordLength = 8
	maxPasswordLength = 72
)

// CreateUserInput holds parameters for account creation.
type CreateUserInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
	Role     domain.UserRole
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if strings.TrimSpace(i.Surname) == "" {
		errs = append(errs, domain.FieldError{Field: "surname", Message: "required"})
	} else if len(i.Surname) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "surname", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be LIBRARIAN or MEMBER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
