package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/service/sport"
)

type sportService interface {
	Create(ctx context.Context, in sport.RecordInput) mutation.Outcome[*domain.SportRecord]
	Update(ctx context.Context, in sport.UpdateInput) mutation.Outcome[*domain.SportRecord]
	Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[domain.ActivityRef]
	Get(ctx context.Context, id uuid.UUID) (*domain.SportRecord, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.SportRecord, error)
}

// SportHandler serves /api/sport.
type SportHandler struct {
	svc sportService
	log *slog.Logger
}

// NewSportHandler creates a SportHandler.
func NewSportHandler(svc sportService, logger *slog.Logger) *SportHandler {
	return &SportHandler{svc: svc, log: logger.With("handler", "sport")}
}

type sportRequest struct {
	SportID   *int              `json:"sport_id"`
	Date      *string           `json:"date"`
	BeginTime *domain.ClockTime `json:"begin_time"`
	EndTime   *domain.ClockTime `json:"end_time"`
	Note      *string           `json:"note"`
}

// List handles GET /api/sport?from=&to=&limit=.
func (h *SportHandler) List(w http.ResponseWriter, r *http.Request) {
	f, errs := recordFilter(r)
	if errs.write(w) {
		return
	}
	recs, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(recs, toSportRecordView))
}

// Get handles GET /api/sport/{id}.
func (h *SportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSportRecordView(rec))
}

// Create handles POST /api/sport.
func (h *SportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := sport.RecordInput{Note: req.Note}
	if req.SportID == nil {
		errs.add("sport_id", "required")
	} else {
		in.SportID = *req.SportID
	}
	if req.Date == nil {
		errs.add("date", "required")
	} else {
		in.Date = errs.date("date", *req.Date)
	}
	if req.BeginTime == nil {
		errs.add("begin_time", "required")
	} else {
		in.BeginTime = *req.BeginTime
	}
	if req.EndTime == nil {
		errs.add("end_time", "required")
	} else {
		in.EndTime = *req.EndTime
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.Create(r.Context(), in), true, sportOut)
}

// Update handles PATCH /api/sport/{id}. Absent fields are left unchanged.
func (h *SportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req sportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	var errs fields
	in := sport.UpdateInput{
		ID:        id,
		SportID:   req.SportID,
		Date:      errs.optDate("date", req.Date),
		BeginTime: req.BeginTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}
	if errs.write(w) {
		return
	}
	writeOutcome(w, h.svc.Update(r.Context(), in), false, sportOut)
}

// Delete handles DELETE /api/sport/{id}.
func (h *SportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeOutcome(w, h.svc.Delete(r.Context(), id), false, refOut)
}

func sportOut(rec *domain.SportRecord) any { return toSportRecordView(rec) }
