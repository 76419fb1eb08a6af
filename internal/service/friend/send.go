package friend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Send creates a pending edge from the caller to the recipient. Creation is
// serialized per unordered pair, so two accounts requesting each other at
// the same time produce exactly one edge; the loser gets
// DUPLICATE_RELATIONSHIP. A rejected edge does not block a new request.
func (s *Service) Send(ctx context.Context, in SendInput) mutation.Outcome[*domain.FriendEdge] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var to uuid.UUID

	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.FriendEdge]{
		Op: "friend.send",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			if err := in.Validate(); err != nil {
				return err
			}
			id, err := s.resolve(ctx, in)
			if err != nil {
				return err
			}
			if id == userID {
				return domain.Reject(domain.StatusSelfReference, "cannot send a friend request to yourself")
			}
			to = id
			return nil
		},
		Lock: func(ctx context.Context) error {
			return s.locks.LockPair(ctx, userID, to)
		},
		Guard: func(ctx context.Context) error {
			existing, err := s.edges.ActiveBetween(ctx, userID, to)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return nil
			case err != nil:
				return fmt.Errorf("active edge: %w", err)
			case existing.Status == domain.EdgeAccepted:
				return domain.Reject(domain.StatusDuplicateRelationship, "already friends")
			default:
				return domain.Reject(domain.StatusDuplicateRelationship, "request already pending")
			}
		},
		Apply: func(ctx context.Context) (*domain.FriendEdge, error) {
			return s.edges.Create(ctx, &domain.FriendEdge{
				ID:     uuid.New(),
				FromID: userID,
				ToID:   to,
				Status: domain.EdgePending,
			})
		},
		Scopes: func(e *domain.FriendEdge) []domain.Scope {
			return []domain.Scope{domain.ScopeFor(domain.ResourceFriendEdge, e.FromID, e.ToID)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "friend request sent",
			slog.String("from", userID.String()),
			slog.String("to", to.String()),
			slog.String("edge_id", out.Value.ID.String()),
		)
	}
	return out
}

// resolve returns the id of the recipient, checking that it exists.
func (s *Service) resolve(ctx context.Context, in SendInput) (uuid.UUID, error) {
	var (
		acc *domain.Account
		err error
	)
	if in.ToID != uuid.Nil {
		acc, err = s.accounts.GetByID(ctx, in.ToID)
	} else {
		acc, err = s.accounts.GetByUsername(ctx, domain.NormalizeUsername(in.ToUsername))
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("recipient: %w", err)
	}
	return acc.ID, nil
}
