package sport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/cascade"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

type sportRepo interface {
	Create(ctx context.Context, rec *domain.SportRecord) (*domain.SportRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SportRecord, error)
	Update(ctx context.Context, rec *domain.SportRecord) (*domain.SportRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, owner uuid.UUID, f domain.RecordFilter) ([]domain.SportRecord, error)
}

type catalogRepo interface {
	GetSport(ctx context.Context, id int) (*domain.Sport, error)
}

type locker interface {
	LockOwned(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error)
}

type cascader interface {
	FireDelete(ctx context.Context, parent domain.ResourceKind, ids any) (cascade.Report, error)
}

type friendChecker interface {
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
}

// Service manages exercise sessions.
type Service struct {
	records sportRepo
	catalog catalogRepo
	locks   locker
	cascade cascader
	friends friendChecker
	mut     *mutation.Coordinator
	log     *slog.Logger
}

// NewService creates a new sport Service.
func NewService(
	log *slog.Logger,
	records sportRepo,
	catalog catalogRepo,
	locks locker,
	cascade cascader,
	friends friendChecker,
	mut *mutation.Coordinator,
) *Service {
	return &Service{
		records: records,
		catalog: catalog,
		locks:   locks,
		cascade: cascade,
		friends: friends,
		mut:     mut,
		log:     log.With("service", "sport"),
	}
}

// checkSport rejects ids that are not in the catalog.
func (s *Service) checkSport(ctx context.Context, id int) error {
	_, err := s.catalog.GetSport(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("sport_id", "unknown sport")
	}
	if err != nil {
		return fmt.Errorf("get sport: %w", err)
	}
	return nil
}
