package diet

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Create records a meal with its items in one transaction. A failing item
// leaves no record behind.
func (s *Service) Create(ctx context.Context, in CreateInput) mutation.Outcome[*domain.MealRecord] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)

	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.MealRecord]{
		Op: "meal.create",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Guard: func(ctx context.Context) error {
			return s.checkFoods(ctx, in.Items)
		},
		Apply: func(ctx context.Context) (*domain.MealRecord, error) {
			return s.meals.Create(ctx, &domain.MealRecord{
				ID:        uuid.New(),
				AccountID: userID,
				Date:      in.Date,
				Meal:      in.Meal,
				Source:    sourceOrDefault(in.Source),
				Items:     toItems(in.Items),
			})
		},
		Scopes: func(*domain.MealRecord) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceMealRecord, userID)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "meal recorded",
			slog.String("user_id", userID.String()),
			slog.String("record_id", out.Value.ID.String()),
			slog.Int("items", len(out.Value.Items)),
		)
	}
	return out
}

// Update changes the set fields of a meal owned by the caller.
func (s *Service) Update(ctx context.Context, in UpdateInput) mutation.Outcome[*domain.MealRecord] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var (
		owner   uuid.UUID
		current *domain.MealRecord
	)

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.MealRecord]{
		Op: "meal.update",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceMealRecord, in.ID)
			return err
		},
		Guard: func(ctx context.Context) (err error) {
			if err := mutation.CheckOwner(owner, userID); err != nil {
				return err
			}
			if in.Items != nil {
				if err := s.checkFoods(ctx, *in.Items); err != nil {
					return err
				}
			}
			current, err = s.meals.GetByID(ctx, in.ID)
			return err
		},
		Apply: func(ctx context.Context) (*domain.MealRecord, error) {
			next := *current
			in.apply(&next)
			if err := s.meals.Update(ctx, &next); err != nil {
				return nil, err
			}
			if in.Items != nil {
				if err := s.meals.ReplaceItems(ctx, in.ID, toItems(*in.Items)); err != nil {
					return nil, err
				}
			}
			return s.meals.GetByID(ctx, in.ID)
		},
		Scopes: func(*domain.MealRecord) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceMealRecord, owner)}
		},
	})
}

// Delete removes a meal owned by the caller with its items and comments.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[domain.ActivityRef] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var owner uuid.UUID

	out := mutation.Run(ctx, s.mut, mutation.Mutation[domain.ActivityRef]{
		Op: "meal.delete",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return nil
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceMealRecord, id)
			return err
		},
		Guard: func(ctx context.Context) error {
			return mutation.CheckOwner(owner, userID)
		},
		Apply: func(ctx context.Context) (domain.ActivityRef, error) {
			if err := s.meals.Delete(ctx, id); err != nil {
				return domain.ActivityRef{}, err
			}
			return domain.ActivityRef{Kind: domain.ActivityMeal, ID: id}, nil
		},
		Cascade: func(ctx context.Context, ref domain.ActivityRef) error {
			report, err := s.cascade.FireDelete(ctx, domain.ResourceMealRecord, []uuid.UUID{ref.ID})
			if err != nil {
				return err
			}
			s.log.DebugContext(ctx, "meal cascade",
				slog.String("record_id", ref.ID.String()),
				slog.Int64("items", report[domain.ResourceMealItem]),
				slog.Int64("comments", report[domain.ResourceComment]),
			)
			return nil
		},
		Scopes: func(ref domain.ActivityRef) []domain.Scope {
			return []domain.Scope{domain.ActivityScope(domain.ResourceMealRecord, owner, ref)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "meal deleted",
			slog.String("user_id", userID.String()),
			slog.String("record_id", id.String()),
		)
	}
	return out
}
