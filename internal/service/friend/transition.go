package friend

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Transition applies accept, reject, cancel or remove to an edge. Accept
// and reject update the status; cancel and remove delete the edge. The
// returned edge is the state after the action, or the deleted edge.
func (s *Service) Transition(ctx context.Context, in TransitionInput) mutation.Outcome[*domain.FriendEdge] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var edge *domain.FriendEdge

	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.FriendEdge]{
		Op: "friend." + string(in.Action),
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			edge, err = s.locks.LockEdge(ctx, in.EdgeID)
			return err
		},
		Guard: func(ctx context.Context) error {
			return mutation.CheckEdge(edge, userID, in.Action)
		},
		Apply: func(ctx context.Context) (*domain.FriendEdge, error) {
			if target, ok := in.Action.Target(); ok {
				return s.edges.SetStatus(ctx, edge.ID, target)
			}
			if err := s.edges.Delete(ctx, edge.ID); err != nil {
				return nil, err
			}
			return edge, nil
		},
		Scopes: func(e *domain.FriendEdge) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceFriendEdge, e.FromID, e.ToID)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "friend edge updated",
			slog.String("user_id", userID.String()),
			slog.String("edge_id", in.EdgeID.String()),
			slog.String("action", string(in.Action)),
		)
	}
	return out
}
