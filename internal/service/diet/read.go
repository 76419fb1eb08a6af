package diet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Get returns a meal of the caller or of an accepted friend.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.MealRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.meals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	visible, err := s.friends.AreFriends(ctx, userID, rec.AccountID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if !visible {
		return nil, domain.ErrUnauthorized
	}
	return rec, nil
}

// List returns the caller's meals, newest first.
func (s *Service) List(ctx context.Context, f domain.RecordFilter) ([]domain.MealRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}

	recs, err := s.meals.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return recs, nil
}

// DailyTotals sums calories and water of the caller's meals for one day.
type DailyTotals struct {
	Date     string
	Calories float64
	WaterG   float64
	Meals    int
}

// Totals returns per-day sums over the caller's meals in the filter range.
func (s *Service) Totals(ctx context.Context, f domain.RecordFilter) ([]DailyTotals, error) {
	recs, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}

	var out []DailyTotals
	index := make(map[string]int)
	for i := range recs {
		day := recs[i].Date.Format("2006-01-02")
		n, ok := index[day]
		if !ok {
			n = len(out)
			index[day] = n
			out = append(out, DailyTotals{Date: day})
		}
		out[n].Calories += recs[i].TotalCalories()
		out[n].WaterG += recs[i].TotalWater()
		out[n].Meals++
	}
	return out, nil
}
