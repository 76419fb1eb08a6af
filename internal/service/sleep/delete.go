package sleep

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Delete removes a record owned by the caller together with its comments.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[domain.ActivityRef] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var owner uuid.UUID

	out := mutation.Run(ctx, s.mut, mutation.Mutation[domain.ActivityRef]{
		Op: "sleep.delete",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return nil
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceSleepRecord, id)
			return err
		},
		Guard: func(ctx context.Context) error {
			return mutation.CheckOwner(owner, userID)
		},
		Apply: func(ctx context.Context) (domain.ActivityRef, error) {
			if err := s.records.Delete(ctx, id); err != nil {
				return domain.ActivityRef{}, err
			}
			return domain.ActivityRef{Kind: domain.ActivitySleep, ID: id}, nil
		},
		Cascade: func(ctx context.Context, ref domain.ActivityRef) error {
			report, err := s.cascade.FireDelete(ctx, domain.ResourceSleepRecord, []uuid.UUID{ref.ID})
			if err != nil {
				return err
			}
			s.log.DebugContext(ctx, "sleep record cascade",
				slog.String("record_id", ref.ID.String()),
				slog.Int64("comments", report[domain.ResourceComment]),
			)
			return nil
		},
		Scopes: func(ref domain.ActivityRef) []domain.Scope {
			return []domain.Scope{domain.ActivityScope(domain.ResourceSleepRecord, owner, ref)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "sleep record deleted",
			slog.String("user_id", userID.String()),
			slog.String("record_id", id.String()),
		)
	}
	return out
}
