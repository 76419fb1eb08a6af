package sleep

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Get returns a record visible to the caller: their own or an accepted
// friend's.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sleep record: %w", err)
	}

	// AreFriends is true for a == b.
	friends, err := s.friends.AreFriends(ctx, userID, rec.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if !friends {
		return nil, domain.ErrUnauthorized
	}
	return rec, nil
}

// List returns the caller's records, newest first.
func (s *Service) List(ctx context.Context, f domain.RecordFilter) ([]domain.SleepRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}

	recs, err := s.records.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list sleep records: %w", err)
	}
	return recs, nil
}
