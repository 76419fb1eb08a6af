package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/service/sleep"
)

type sleepService interface {
	Create(ctx context.Context, in sleep.CreateInput) mutation.Outcome[*domain.SleepRecord]
	Update(ctx context.Context, in sleep.UpdateInput) mutation.Outcome[*domain.SleepRecord]
	Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[domain.ActivityRef]
	Get(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.SleepRecord, error)
}

// SleepHandler serves /api/sleep.
type SleepHandler struct {
	svc sleepService
	log *slog.Logger
}

// NewSleepHandler creates a SleepHandler.
func NewSleepHandler(svc sleepService, logger *slog.Logger) *SleepHandler {
	return &SleepHandler{svc: svc, log: logger.With("handler", "sleep")}
}

type sleepRequest struct {
	Date      *string           `json:"date"`
	SleepTime *domain.ClockTime `json:"sleep_time"`
	WakeTime  *domain.ClockTime `json:"wake_time"`
	Note      *string           `json:"note"`
}

// List handles GET /api/sleep?from=&to=&limit=.
func (h *SleepHandler) List(w http.ResponseWriter, r *http.Request) {
	f, errs := recordFilter(r)
	if errs.write(w) {
		return
	}
	recs, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(recs, toSleepView))
}

// Get handles GET /api/sleep/{id}.
func (h *SleepHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSleepView(rec))
}

// Create handles POST /api/sleep.
func (h *SleepHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sleepRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := sleep.CreateInput{Note: req.Note}
	if req.Date == nil {
		errs.add("date", "required")
	} else {
		in.Date = errs.date("date", *req.Date)
	}
	if req.SleepTime == nil {
		errs.add("sleep_time", "required")
	} else {
		in.SleepTime = *req.SleepTime
	}
	if req.WakeTime == nil {
		errs.add("wake_time", "required")
	} else {
		in.WakeTime = *req.WakeTime
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.Create(r.Context(), in), true, sleepOut)
}

// Update handles PATCH /api/sleep/{id}. Absent fields are left unchanged.
func (h *SleepHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req sleepRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := sleep.UpdateInput{
		ID:        id,
		Date:      errs.optDate("date", req.Date),
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Note:      req.Note,
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.Update(r.Context(), in), false, sleepOut)
}

// Delete handles DELETE /api/sleep/{id}.
func (h *SleepHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeOutcome(w, h.svc.Delete(r.Context(), id), false, refOut)
}

func sleepOut(rec *domain.SleepRecord) any { return toSleepView(rec) }

func refOut(ref domain.ActivityRef) any { return toRefView(ref) }
