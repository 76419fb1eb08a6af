package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/service/account"
)

type accountService interface {
	Me(ctx context.Context) (*domain.Account, error)
	Profile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, in account.ProfileInput) mutation.Outcome[*domain.Profile]
	Delete(ctx context.Context) mutation.Outcome[uuid.UUID]
}

// AccountHandler serves /api/account.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

// Me handles GET /api/account.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Me(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toAccountView(acc))
}

// Delete handles DELETE /api/account.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writeOutcome(w, h.svc.Delete(r.Context()), false, func(id uuid.UUID) any {
		return map[string]uuid.UUID{"id": id}
	})
}

// Profile handles GET /api/account/profile.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Profile(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toProfileView(p))
}

type profileRequest struct {
	RealName       *string        `json:"real_name"`
	Gender         *domain.Gender `json:"gender"`
	HeightCM       *float64       `json:"height_cm"`
	WeightKG       *float64       `json:"weight_kg"`
	Birthday       *string        `json:"birthday"`
	SleepGoalHours *float64       `json:"sleep_goal_hours"`
	BurnGoalKcal   *float64       `json:"burn_goal_kcal"`
	IntakeGoalKcal *float64       `json:"intake_goal_kcal"`
}

// UpdateProfile handles PATCH /api/account/profile.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := account.ProfileInput{
		RealName:       req.RealName,
		Gender:         req.Gender,
		HeightCM:       req.HeightCM,
		WeightKG:       req.WeightKG,
		Birthday:       errs.optDate("birthday", req.Birthday),
		SleepGoalHours: req.SleepGoalHours,
		BurnGoalKcal:   req.BurnGoalKcal,
		IntakeGoalKcal: req.IntakeGoalKcal,
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.UpdateProfile(r.Context(), in), false, func(p *domain.Profile) any {
		return toProfileView(p)
	})
}
