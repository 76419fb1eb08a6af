package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels shared by repositories and services. StatusOf maps each to a
// Status.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrLockTimeout   = errors.New("lock timeout")

	ErrAlreadyProcessed      = errors.New("request already processed")
	ErrSelfReference         = errors.New("self reference rejected")
	ErrDuplicateRelationship = errors.New("relationship already exists")

	ErrUsernameTaken = fmt.Errorf("username taken: %w", ErrAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email taken: %w", ErrAlreadyExists)
)

// FieldError names an input field and what is wrong with it. Field uses
// the snake_case name clients send.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string { return f.Field + ": " + f.Message }

// ValidationError collects every field problem of one input. It maps to
// StatusInvalidInput.
type ValidationError struct {
	Errors []FieldError
}

// Error lists every field, e.g. "validation: date: required; meal: invalid".
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, f := range e.Errors {
		parts[i] = f.String()
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Field returns the message for name, if present.
func (e *ValidationError) Field(name string) (string, bool) {
	for _, f := range e.Errors {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}

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
