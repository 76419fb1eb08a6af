package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// ListFriends returns the caller's accepted edges, excluding the self-edge.
func (s *Service) ListFriends(ctx context.Context) ([]domain.FriendEdge, error) {
	return s.list(ctx, cache.FriendsKey, s.edges.ListFriends)
}

// ListReceived returns pending and rejected requests sent to the caller.
func (s *Service) ListReceived(ctx context.Context) ([]domain.FriendEdge, error) {
	return s.list(ctx, cache.ReceivedKey, s.edges.ListReceived)
}

// ListSent returns pending and rejected requests sent by the caller.
func (s *Service) ListSent(ctx context.Context) ([]domain.FriendEdge, error) {
	return s.list(ctx, cache.SentKey, s.edges.ListSent)
}

func (s *Service) list(
	ctx context.Context,
	key func(uuid.UUID) string,
	load func(context.Context, uuid.UUID) ([]domain.FriendEdge, error),
) ([]domain.FriendEdge, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	edges, err := cache.Load(ctx, s.views, key(userID), func(ctx context.Context) ([]domain.FriendEdge, error) {
		return load(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("list edges: %w", err)
	}
	return edges, nil
}
