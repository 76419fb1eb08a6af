package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Delete removes the caller's account with every record, comment, edge and
// token it owns.
func (s *Service) Delete(ctx context.Context) mutation.Outcome[uuid.UUID] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	return s.remove(ctx, "account.delete", userID, func() error {
		if !ok {
			return domain.ErrUnauthorized
		}
		return nil
	})
}

// Remove deletes any account. It is the operator path used by the CLI and
// carries no requester.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) mutation.Outcome[uuid.UUID] {
	return s.remove(ctx, "account.remove", id, func() error {
		if id == uuid.Nil {
			return domain.NewValidationError("id", "required")
		}
		return nil
	})
}

func (s *Service) remove(ctx context.Context, op string, id uuid.UUID, validate func() error) mutation.Outcome[uuid.UUID] {
	var (
		others  []uuid.UUID
		threads []domain.ActivityRef
	)

	return mutation.Run(ctx, s.mut, mutation.Mutation[uuid.UUID]{
		Op:       op,
		Validate: validate,
		Lock: func(ctx context.Context) error {
			_, err := s.locks.LockOwned(ctx, domain.ResourceAccount, id)
			return err
		},
		Guard: func(ctx context.Context) (err error) {
			// Read under the account lock so the cached edge lists and
			// comment threads the cascade changes can be dropped after commit.
			if others, err = s.edges.Counterparts(ctx, id); err != nil {
				return err
			}
			threads, err = s.comments.ThreadsTouchedBy(ctx, id)
			return err
		},
		Apply: func(ctx context.Context) (uuid.UUID, error) {
			return id, s.accounts.Delete(ctx, id)
		},
		Cascade: func(ctx context.Context, id uuid.UUID) error {
			report, err := s.cascade.FireDelete(ctx, domain.ResourceAccount, []uuid.UUID{id})
			if err != nil {
				return err
			}
			s.log.InfoContext(ctx, "account removed",
				slog.String("user_id", id.String()),
				slog.Int64("records", report[domain.ResourceSleepRecord]+report[domain.ResourceSportRecord]+report[domain.ResourceMealRecord]),
				slog.Int64("comments", report[domain.ResourceComment]),
				slog.Int64("edges", report[domain.ResourceFriendEdge]),
			)
			return nil
		},
		Scopes: func(id uuid.UUID) []domain.Scope {
			scopes := make([]domain.Scope, 0, len(threads)+1)
			scopes = append(scopes, domain.ScopeFor(domain.ResourceAccount, id, others...))
			for _, ref := range threads {
				scopes = append(scopes, domain.ActivityScope(domain.ResourceComment, id, ref))
			}
			return scopes
		},
	})
}
