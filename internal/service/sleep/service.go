package sleep

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/cascade"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

type sleepRepo interface {
	Create(ctx context.Context, rec *domain.SleepRecord) (*domain.SleepRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error)
	Update(ctx context.Context, rec *domain.SleepRecord) (*domain.SleepRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, owner uuid.UUID, f domain.RecordFilter) ([]domain.SleepRecord, error)
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

// Service manages sleep records.
type Service struct {
	records sleepRepo
	locks   locker
	cascade cascader
	friends friendChecker
	mut     *mutation.Coordinator
	log     *slog.Logger
}

// NewService creates a new sleep Service.
func NewService(
	log *slog.Logger,
	records sleepRepo,
	locks locker,
	cascade cascader,
	friends friendChecker,
	mut *mutation.Coordinator,
) *Service {
	return &Service{
		records: records,
		locks:   locks,
		cascade: cascade,
		friends: friends,
		mut:     mut,
		log:     log.With("service", "sleep"),
	}
}
