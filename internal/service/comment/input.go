package comment

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const maxContentLength = 1000

// CreateInput holds the parameters for commenting on an activity.
type CreateInput struct {
	Activity domain.ActivityRef
	Content  string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if !i.Activity.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "must be sleep, sport or meal"})
	}
	if i.Activity.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "activity_id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput replaces the text of a comment.
type UpdateInput struct {
	ID      uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateContent(errs, i.Content)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	c := domain.CleanText(content)
	switch {
	case c == "":
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	case utf8.RuneCountInString(c) > maxContentLength:
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 1000 characters"})
	}
	return errs
}
