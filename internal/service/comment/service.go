package comment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByActivity(ctx context.Context, ref domain.ActivityRef) ([]domain.Comment, error)
}

type locker interface {
	LockOwned(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error)
	ShareOwned(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error)
	OwnerOf(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error)
}

type friendChecker interface {
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// Service manages comments on sleep, sport and meal records.
type Service struct {
	comments commentRepo
	locks    locker
	friends  friendChecker
	views    cache.Loader
	mut      *mutation.Coordinator
	log      *slog.Logger
}

// NewService creates a new comment Service. views may be nil.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	locks locker,
	friends friendChecker,
	views cache.Loader,
	mut *mutation.Coordinator,
) *Service {
	return &Service{
		comments: comments,
		locks:    locks,
		friends:  friends,
		views:    views,
		mut:      mut,
		log:      log.With("service", "comment"),
	}
}

// canSee reports whether viewer may read and comment on activities of owner.
func (s *Service) canSee(ctx context.Context, viewer, owner uuid.UUID) error {
	ok, err := s.friends.AreFriends(ctx, viewer, owner)
	if err != nil {
		return fmt.Errorf("check friendship: %w", err)
	}
	if !ok {
		return domain.Reject(domain.StatusUnauthorized, "not a friend of the activity owner")
	}
	return nil
}
