// Package catalog serves the sport and food catalogs and retires foods.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/cascade"
	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

const (
	defaultFoodLimit = 50
	maxFoodLimit     = 200
)

type catalogRepo interface {
	ListSports(ctx context.Context) ([]domain.Sport, error)
	ListFoods(ctx context.Context, query string, limit int) ([]domain.Food, error)
	GetFood(ctx context.Context, id int) (*domain.Food, error)
	DeleteFood(ctx context.Context, id int) error
}

type cascader interface {
	FireDelete(ctx context.Context, parent domain.ResourceKind, ids any) (cascade.Report, error)
}

// Service reads the catalogs.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
	cascade cascader
	views   cache.Loader
	mut     *mutation.Coordinator
}

func NewService(log *slog.Logger, catalog catalogRepo, cascade cascader, views cache.Loader, mut *mutation.Coordinator) *Service {
	return &Service{
		log:     log.With("service", "catalog"),
		catalog: catalog,
		cascade: cascade,
		views:   views,
		mut:     mut,
	}
}

// ListSports returns the whole sport catalog.
func (s *Service) ListSports(ctx context.Context) ([]domain.Sport, error) {
	sports, err := cache.Load(ctx, s.views, cache.SportsKey, s.catalog.ListSports)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListSports: %w", err)
	}
	return sports, nil
}

// ListFoods searches foods by name. A zero limit selects the default.
func (s *Service) ListFoods(ctx context.Context, query string, limit int) ([]domain.Food, error) {
	query = strings.TrimSpace(query)
	if len(query) > 100 {
		return nil, domain.NewValidationError("q", "too long")
	}
	switch {
	case limit == 0:
		limit = defaultFoodLimit
	case limit < 0 || limit > maxFoodLimit:
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", maxFoodLimit))
	}

	foods, err := s.catalog.ListFoods(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListFoods: %w", err)
	}
	return foods, nil
}

// RetireFood deletes a food. Meal items that referenced it keep their grams
// and lose the food reference.
func (s *Service) RetireFood(ctx context.Context, id int) mutation.Outcome[*domain.Food] {
	var food *domain.Food

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.Food]{
		Op: "food.retire",
		Validate: func() error {
			if id <= 0 {
				return domain.NewValidationError("id", "must be positive")
			}
			return nil
		},
		Guard: func(ctx context.Context) (err error) {
			food, err = s.catalog.GetFood(ctx, id)
			return err
		},
		Apply: func(ctx context.Context) (*domain.Food, error) {
			if err := s.catalog.DeleteFood(ctx, id); err != nil {
				return nil, err
			}
			return food, nil
		},
		Cascade: func(ctx context.Context, food *domain.Food) error {
			report, err := s.cascade.FireDelete(ctx, domain.ResourceFood, []int{food.ID})
			if err != nil {
				return err
			}
			s.log.InfoContext(ctx, "food retired",
				slog.Int("food_id", food.ID),
				slog.Int64("detached_items", report[domain.ResourceMealItem]),
			)
			return nil
		},
		Scopes: func(food *domain.Food) []domain.Scope {
			return []domain.Scope{{Kind: domain.ResourceFood}}
		},
	})
}
