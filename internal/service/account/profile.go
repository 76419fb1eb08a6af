package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Me returns the caller's account.
func (s *Service) Me(ctx context.Context) (*domain.Account, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	account, err := s.accounts.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("account.Me: %w", err)
	}
	return account, nil
}

// Profile returns the caller's profile.
func (s *Service) Profile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	p, err := cache.Load(ctx, s.views, cache.ProfileKey(userID), func(ctx context.Context) (*domain.Profile, error) {
		return s.accounts.GetProfile(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("account.Profile: %w", err)
	}
	return p, nil
}

// UpdateProfile merges the set fields of in into the caller's profile.
func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) mutation.Outcome[*domain.Profile] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var (
		owner   uuid.UUID
		current *domain.Profile
	)

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.Profile]{
		Op: "profile.update",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			if in.empty() {
				return domain.NewValidationError("profile", "no fields to update")
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.LockOwned(ctx, domain.ResourceProfile, userID)
			return err
		},
		Guard: func(ctx context.Context) (err error) {
			if err := mutation.CheckOwner(owner, userID); err != nil {
				return err
			}
			current, err = s.accounts.GetProfile(ctx, userID)
			return err
		},
		Apply: func(ctx context.Context) (*domain.Profile, error) {
			next := *current
			in.apply(&next)
			return s.accounts.UpdateProfile(ctx, &next)
		},
		Scopes: func(*domain.Profile) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceProfile, userID)}
		},
	})
}
