// Package account serves the caller's own account and profile and removes
// accounts together with everything they own.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/cascade"
	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetProfile(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

type edgeRepo interface {
	Counterparts(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error)
}

type commentRepo interface {
	ThreadsTouchedBy(ctx context.Context, account uuid.UUID) ([]domain.ActivityRef, error)
}

type locker interface {
	LockOwned(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error)
}

type cascader interface {
	FireDelete(ctx context.Context, parent domain.ResourceKind, ids any) (cascade.Report, error)
}

// Service manages accounts and profiles.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	edges    edgeRepo
	comments commentRepo
	locks    locker
	cascade  cascader
	views    cache.Loader
	mut      *mutation.Coordinator
}

// NewService creates a new account Service. views may be nil.
func NewService(
	log *slog.Logger,
	accounts accountRepo,
	edges edgeRepo,
	comments commentRepo,
	locks locker,
	cascade cascader,
	views cache.Loader,
	mut *mutation.Coordinator,
) *Service {
	return &Service{
		log:      log.With("service", "account"),
		accounts: accounts,
		edges:    edges,
		comments: comments,
		locks:    locks,
		cascade:  cascade,
		views:    views,
		mut:      mut,
	}
}
