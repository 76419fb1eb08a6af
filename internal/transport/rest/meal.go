package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/service/diet"
)

type mealService interface {
	Create(ctx context.Context, in diet.CreateInput) mutation.Outcome[*domain.MealRecord]
	Update(ctx context.Context, in diet.UpdateInput) mutation.Outcome[*domain.MealRecord]
	Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[domain.ActivityRef]
	Get(ctx context.Context, id uuid.UUID) (*domain.MealRecord, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.MealRecord, error)
	Totals(ctx context.Context, f domain.RecordFilter) ([]diet.DailyTotals, error)
}

// MealHandler serves /api/meals.
type MealHandler struct {
	svc mealService
	log *slog.Logger
}

// NewMealHandler creates a MealHandler.
func NewMealHandler(svc mealService, logger *slog.Logger) *MealHandler {
	return &MealHandler{svc: svc, log: logger.With("handler", "meal")}
}

type mealItemRequest struct {
	FoodID int     `json:"food_id"`
	Grams  float64 `json:"grams"`
}

type mealRequest struct {
	Date   *string            `json:"date"`
	Meal   *domain.MealType   `json:"meal"`
	Source *domain.MealSource `json:"source"`
	Items  *[]mealItemRequest `json:"items"`
}

func (req mealRequest) items() *[]diet.ItemInput {
	if req.Items == nil {
		return nil
	}
	out := make([]diet.ItemInput, 0, len(*req.Items))
	for _, it := range *req.Items {
		out = append(out, diet.ItemInput{FoodID: it.FoodID, Grams: it.Grams})
	}
	return &out
}

type totalsView struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	WaterG   float64 `json:"water_g"`
	Meals    int     `json:"meals"`
}

// List handles GET /api/meals?from=&to=&limit=.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	f, errs := recordFilter(r)
	if errs.write(w) {
		return
	}
	recs, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(recs, toMealView))
}

// Totals handles GET /api/meals/totals?from=&to=.
func (h *MealHandler) Totals(w http.ResponseWriter, r *http.Request) {
	f, errs := recordFilter(r)
	if errs.write(w) {
		return
	}
	days, err := h.svc.Totals(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(days, func(d *diet.DailyTotals) totalsView {
		return totalsView{Date: d.Date, Calories: round1(d.Calories), WaterG: round1(d.WaterG), Meals: d.Meals}
	}))
}

// Get handles GET /api/meals/{id}.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toMealView(rec))
}

// Create handles POST /api/meals. Source defaults to manual.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := diet.CreateInput{Source: domain.MealSourceManual}
	if req.Date == nil {
		errs.add("date", "required")
	} else {
		in.Date = errs.date("date", *req.Date)
	}
	if req.Meal == nil {
		errs.add("meal", "required")
	} else {
		in.Meal = *req.Meal
	}
	if req.Source != nil {
		in.Source = *req.Source
	}
	if items := req.items(); items != nil {
		in.Items = *items
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.Create(r.Context(), in), true, mealOut)
}

// Update handles PATCH /api/meals/{id}. A present items list replaces all
// items of the meal.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req mealRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := diet.UpdateInput{
		ID:     id,
		Date:   errs.optDate("date", req.Date),
		Meal:   req.Meal,
		Source: req.Source,
		Items:  req.items(),
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.Update(r.Context(), in), false, mealOut)
}

// Delete handles DELETE /api/meals/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeOutcome(w, h.svc.Delete(r.Context(), id), false, refOut)
}

func mealOut(rec *domain.MealRecord) any { return toMealView(rec) }
