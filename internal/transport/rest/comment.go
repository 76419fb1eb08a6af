package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/service/comment"
)

type commentService interface {
	List(ctx context.Context, ref domain.ActivityRef) ([]domain.Comment, error)
	Create(ctx context.Context, in comment.CreateInput) mutation.Outcome[*domain.Comment]
	Update(ctx context.Context, in comment.UpdateInput) mutation.Outcome[*domain.Comment]
	Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[*domain.Comment]
}

// CommentHandler serves /api/comments.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type commentRequest struct {
	ActivityType domain.ActivityKind `json:"activity_type"`
	ActivityID   uuid.UUID           `json:"activity_id"`
	Content      string              `json:"content"`
}

type commentUpdateRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/comments?activity_type=&activity_id=.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var errs fields
	ref := domain.ActivityRef{Kind: domain.ActivityKind(q.Get("activity_type"))}
	if !ref.Kind.IsValid() {
		errs.add("activity_type", "must be sleep, sport or meal")
	}
	id, err := uuid.Parse(q.Get("activity_id"))
	if err != nil {
		errs.add("activity_id", "must be a UUID")
	}
	ref.ID = id
	if errs.write(w) {
		return
	}

	comments, err := h.svc.List(r.Context(), ref)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(comments, toCommentView))
}

// Create handles POST /api/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	out := h.svc.Create(r.Context(), comment.CreateInput{
		Activity: domain.ActivityRef{Kind: req.ActivityType, ID: req.ActivityID},
		Content:  req.Content,
	})
	writeOutcome(w, out, true, commentOut)
}

// Update handles PATCH /api/comments/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req commentUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeOutcome(w, h.svc.Update(r.Context(), comment.UpdateInput{ID: id, Content: req.Content}), false, commentOut)
}

// Delete handles DELETE /api/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeOutcome(w, h.svc.Delete(r.Context(), id), false, commentOut)
}

func commentOut(c *domain.Comment) any { return toCommentView(c) }
