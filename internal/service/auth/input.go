package auth

import (
	"net/mail"
	"regexp"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input. Username and email are expected
// to be normalized.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !usernamePattern.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "3-32 characters: letters, digits, '_' or '.'"})
	}

	errs = validateEmail(errs, i.Email)

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 8 characters"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	errs := validateEmail(nil, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	default:
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}
	return errs
}
