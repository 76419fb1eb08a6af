package sport

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Create records an exercise session for the authenticated account.
func (s *Service) Create(ctx context.Context, in RecordInput) mutation.Outcome[*domain.SportRecord] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)

	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.SportRecord]{
		Op: "sport.create",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Guard: func(ctx context.Context) error {
			return s.checkSport(ctx, in.SportID)
		},
		Apply: func(ctx context.Context) (*domain.SportRecord, error) {
			return s.records.Create(ctx, in.record(uuid.New(), userID))
		},
		Scopes: func(rec *domain.SportRecord) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceSportRecord, userID)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "sport record created",
			slog.String("user_id", userID.String()),
			slog.String("record_id", out.Value.ID.String()),
			slog.Int("sport_id", in.SportID),
		)
	}
	return out
}

// Update changes the set fields of a session owned by the caller.
func (s *Service) Update(ctx context.Context, in UpdateInput) mutation.Outcome[*domain.SportRecord] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var (
		owner   uuid.UUID
		current *domain.SportRecord
	)

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.SportRecord]{
		Op: "sport.update",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceSportRecord, in.ID)
			return err
		},
		Guard: func(ctx context.Context) (err error) {
			if err := mutation.CheckOwner(owner, userID); err != nil {
				return err
			}
			if in.SportID != nil {
				if err := s.checkSport(ctx, *in.SportID); err != nil {
					return err
				}
			}
			current, err = s.records.GetByID(ctx, in.ID)
			return err
		},
		Apply: func(ctx context.Context) (*domain.SportRecord, error) {
			next := *current
			in.apply(&next)
			return s.records.Update(ctx, &next)
		},
		Scopes: func(*domain.SportRecord) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceSportRecord, owner)}
		},
	})
}

// Delete removes a session owned by the caller together with its comments.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[domain.ActivityRef] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var owner uuid.UUID

	out := mutation.Run(ctx, s.mut, mutation.Mutation[domain.ActivityRef]{
		Op: "sport.delete",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return nil
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceSportRecord, id)
			return err
		},
		Guard: func(ctx context.Context) error {
			return mutation.CheckOwner(owner, userID)
		},
		Apply: func(ctx context.Context) (domain.ActivityRef, error) {
			if err := s.records.Delete(ctx, id); err != nil {
				return domain.ActivityRef{}, err
			}
			return domain.ActivityRef{Kind: domain.ActivitySport, ID: id}, nil
		},
		Cascade: func(ctx context.Context, ref domain.ActivityRef) error {
			_, err := s.cascade.FireDelete(ctx, domain.ResourceSportRecord, []uuid.UUID{ref.ID})
			return err
		},
		Scopes: func(ref domain.ActivityRef) []domain.Scope {
			return []domain.Scope{domain.ActivityScope(domain.ResourceSportRecord, owner, ref)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "sport record deleted",
			slog.String("user_id", userID.String()),
			slog.String("record_id", id.String()),
		)
	}
	return out
}
