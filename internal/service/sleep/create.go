package sleep

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Create records a night of sleep for the authenticated account.
func (s *Service) Create(ctx context.Context, in CreateInput) mutation.Outcome[*domain.SleepRecord] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)

	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.SleepRecord]{
		Op: "sleep.create",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Apply: func(ctx context.Context) (*domain.SleepRecord, error) {
			return s.records.Create(ctx, &domain.SleepRecord{
				ID:        uuid.New(),
				AccountID: userID,
				Date:      in.Date,
				SleepTime: in.SleepTime,
				WakeTime:  in.WakeTime,
				Note:      cleanNote(in.Note),
			})
		},
		Scopes: func(rec *domain.SleepRecord) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceSleepRecord, rec.AccountID)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "sleep record created",
			slog.String("user_id", userID.String()),
			slog.String("record_id", out.Value.ID.String()),
		)
	}
	return out
}
