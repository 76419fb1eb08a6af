package sleep

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Update changes the set fields of a record owned by the caller.
func (s *Service) Update(ctx context.Context, in UpdateInput) mutation.Outcome[*domain.SleepRecord] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var (
		owner   uuid.UUID
		current *domain.SleepRecord
	)

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.SleepRecord]{
		Op: "sleep.update",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceSleepRecord, in.ID)
			return err
		},
		Guard: func(ctx context.Context) (err error) {
			if err := mutation.CheckOwner(owner, userID); err != nil {
				return err
			}
			current, err = s.records.GetByID(ctx, in.ID)
			return err
		},
		Apply: func(ctx context.Context) (*domain.SleepRecord, error) {
			next := *current
			in.apply(&next)
			return s.records.Update(ctx, &next)
		},
		Scopes: func(rec *domain.SleepRecord) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceSleepRecord, owner)}
		},
	})
}
