package friend

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// SendInput names the recipient of a friend request by id or by username.
type SendInput struct {
	ToID       uuid.UUID
	ToUsername string
}

// Validate checks all fields and collects all errors.
func (i SendInput) Validate() error {
	if i.ToID == uuid.Nil && domain.NormalizeUsername(i.ToUsername) == "" {
		return domain.NewValidationError("to", "account id or username required")
	}
	return nil
}

// TransitionInput requests an action on an existing edge.
type TransitionInput struct {
	EdgeID uuid.UUID
	Action domain.EdgeAction
}

// Validate checks all fields and collects all errors.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError
	if i.EdgeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be accept, reject, cancel or remove"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
