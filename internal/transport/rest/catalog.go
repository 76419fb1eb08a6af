package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

type catalogService interface {
	ListSports(ctx context.Context) ([]domain.Sport, error)
	ListFoods(ctx context.Context, query string, limit int) ([]domain.Food, error)
}

// CatalogHandler serves the read-only sport and food catalogs.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// Sports handles GET /api/catalog/sports.
func (h *CatalogHandler) Sports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.svc.ListSports(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(sports, func(s *domain.Sport) sportView {
		return sportView{ID: s.ID, Name: s.Name, MET: s.MET}
	}))
}

// Foods handles GET /api/catalog/foods?q=&limit=.
func (h *CatalogHandler) Foods(w http.ResponseWriter, r *http.Request) {
	var errs fields
	limit := errs.limit(r)
	if errs.write(w) {
		return
	}
	foods, err := h.svc.ListFoods(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(foods, toFoodView))
}
