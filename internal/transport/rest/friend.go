package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/service/friend"
)

type friendService interface {
	ListFriends(ctx context.Context) ([]domain.FriendEdge, error)
	ListReceived(ctx context.Context) ([]domain.FriendEdge, error)
	ListSent(ctx context.Context) ([]domain.FriendEdge, error)
	Send(ctx context.Context, in friend.SendInput) mutation.Outcome[*domain.FriendEdge]
	Transition(ctx context.Context, in friend.TransitionInput) mutation.Outcome[*domain.FriendEdge]
	Feed(ctx context.Context, target uuid.UUID, limit int) ([]domain.FeedEntry, error)
}

// FriendHandler serves /api/friends and /api/feed.
type FriendHandler struct {
	svc friendService
	log *slog.Logger
}

// NewFriendHandler creates a FriendHandler.
func NewFriendHandler(svc friendService, logger *slog.Logger) *FriendHandler {
	return &FriendHandler{svc: svc, log: logger.With("handler", "friend")}
}

type friendRequest struct {
	ToID       uuid.UUID `json:"to_id"`
	ToUsername string    `json:"to_username"`
}

// Friends handles GET /api/friends.
func (h *FriendHandler) Friends(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.ListFriends)
}

// Received handles GET /api/friends/requests/received.
func (h *FriendHandler) Received(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.ListReceived)
}

// Sent handles GET /api/friends/requests/sent.
func (h *FriendHandler) Sent(w http.ResponseWriter, r *http.Request) {
	h.listEdges(w, r, h.svc.ListSent)
}

func (h *FriendHandler) listEdges(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]domain.FriendEdge, error)) {
	edges, err := list(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(edges, toEdgeView))
}

// Send handles POST /api/friends/requests.
func (h *FriendHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req friendRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	out := h.svc.Send(r.Context(), friend.SendInput{ToID: req.ToID, ToUsername: req.ToUsername})
	writeOutcome(w, out, true, edgeOut)
}

// Transition handles POST /api/friends/edges/{id}/{action}.
func (h *FriendHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	action := domain.EdgeAction(r.PathValue("action"))
	out := h.svc.Transition(r.Context(), friend.TransitionInput{EdgeID: id, Action: action})
	writeOutcome(w, out, false, edgeOut)
}

// Feed handles GET /api/feed?account_id=&limit=. Without account_id the
// caller's own feed is returned.
func (h *FriendHandler) Feed(w http.ResponseWriter, r *http.Request) {
	var errs fields
	target := uuid.Nil
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs.add("account_id", "must be a UUID")
		}
		target = id
	}
	limit := errs.limit(r)
	if errs.write(w) {
		return
	}

	entries, err := h.svc.Feed(r.Context(), target, limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(entries, toFeedEntryView))
}

func edgeOut(e *domain.FriendEdge) any { return toEdgeView(e) }
