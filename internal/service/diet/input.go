package diet

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const (
	maxItemsPerMeal = 50
	maxItemGrams    = 5000
)

// ItemInput is one line of a meal.
type ItemInput struct {
	FoodID int
	Grams  float64
}

// CreateInput holds the parameters for recording a meal.
type CreateInput struct {
	Date   time.Time
	Meal   domain.MealType
	Source domain.MealSource
	Items  []ItemInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Meal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal", Message: "must be breakfast, lunch or dinner"})
	}
	if i.Source != "" && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be manual or ai"})
	}
	errs = validateItems(errs, i.Items)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput changes a meal. Nil fields are left unchanged. A non-nil
// Items replaces every item of the meal.
type UpdateInput struct {
	ID     uuid.UUID
	Date   *time.Time
	Meal   *domain.MealType
	Source *domain.MealSource
	Items  *[]ItemInput
}

// Validate checks the set fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Date == nil && i.Meal == nil && i.Source == nil && i.Items == nil {
		errs = append(errs, domain.FieldError{Field: "record", Message: "no fields to update"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Meal != nil && !i.Meal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal", Message: "must be breakfast, lunch or dinner"})
	}
	if i.Source != nil && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be manual or ai"})
	}
	if i.Items != nil {
		errs = validateItems(errs, *i.Items)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) apply(rec *domain.MealRecord) {
	if i.Date != nil {
		rec.Date = *i.Date
	}
	if i.Meal != nil {
		rec.Meal = *i.Meal
	}
	if i.Source != nil {
		rec.Source = *i.Source
	}
}

func validateItems(errs []domain.FieldError, items []ItemInput) []domain.FieldError {
	if len(items) > maxItemsPerMeal {
		return append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d items", maxItemsPerMeal)})
	}
	for n, it := range items {
		if it.FoodID <= 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].food_id", n), Message: "required"})
		}
		if it.Grams <= 0 || it.Grams > maxItemGrams {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("items[%d].grams", n), Message: "must be in (0, 5000]"})
		}
	}
	return errs
}

func toItems(in []ItemInput) []domain.MealItem {
	items := make([]domain.MealItem, len(in))
	for i, it := range in {
		food := it.FoodID
		items[i] = domain.MealItem{ID: uuid.New(), FoodID: &food, Grams: it.Grams}
	}
	return items
}

func sourceOrDefault(s domain.MealSource) domain.MealSource {
	if s == "" {
		return domain.MealSourceManual
	}
	return s
}
