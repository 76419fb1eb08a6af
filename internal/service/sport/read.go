package sport

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Get returns a session of the caller or of an accepted friend. Calories
// are derived from the owner's current profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SportRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sport record: %w", err)
	}
	visible, err := s.friends.AreFriends(ctx, userID, rec.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if !visible {
		return nil, domain.ErrUnauthorized
	}
	return rec, nil
}

// List returns the caller's sessions, newest first.
func (s *Service) List(ctx context.Context, f domain.RecordFilter) ([]domain.SportRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}

	recs, err := s.records.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list sport records: %w", err)
	}
	return recs, nil
}
