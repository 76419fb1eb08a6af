package diet

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/cascade"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

type mealRepo interface {
	Create(ctx context.Context, rec *domain.MealRecord) (*domain.MealRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MealRecord, error)
	Update(ctx context.Context, rec *domain.MealRecord) error
	ReplaceItems(ctx context.Context, recordID uuid.UUID, items []domain.MealItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, owner uuid.UUID, f domain.RecordFilter) ([]domain.MealRecord, error)
}

type catalogRepo interface {
	MissingFoods(ctx context.Context, ids []int) ([]int, error)
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

// Service manages meal records and their items.
type Service struct {
	meals   mealRepo
	catalog catalogRepo
	locks   locker
	cascade cascader
	friends friendChecker
	mut     *mutation.Coordinator
	log     *slog.Logger
}

// NewService creates a new diet Service.
func NewService(
	log *slog.Logger,
	meals mealRepo,
	catalog catalogRepo,
	locks locker,
	cascade cascader,
	friends friendChecker,
	mut *mutation.Coordinator,
) *Service {
	return &Service{
		meals:   meals,
		catalog: catalog,
		locks:   locks,
		cascade: cascade,
		friends: friends,
		mut:     mut,
		log:     log.With("service", "diet"),
	}
}

// checkFoods rejects items that reference foods missing from the catalog.
// The item foreign key is deferred, so without this check the failure
// would only surface at commit.
func (s *Service) checkFoods(ctx context.Context, items []ItemInput) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.FoodID
	}
	missing, err := s.catalog.MissingFoods(ctx, ids)
	if err != nil {
		return fmt.Errorf("check foods: %w", err)
	}
	if len(missing) > 0 {
		parts := make([]string, len(missing))
		for i, id := range missing {
			parts[i] = strconv.Itoa(id)
		}
		return domain.NewValidationError("items", "unknown food: "+strings.Join(parts, ", "))
	}
	return nil
}
