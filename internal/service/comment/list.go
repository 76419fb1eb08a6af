package comment

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// List returns the comments of an activity, oldest first. The activity
// must belong to the caller or to an accepted friend.
func (s *Service) List(ctx context.Context, ref domain.ActivityRef) ([]domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ref.Kind.IsValid() {
		return nil, domain.NewValidationError("activity_type", "must be sleep, sport or meal")
	}

	owner, err := s.locks.OwnerOf(ctx, ref.Kind.Resource(), ref.ID)
	if err != nil {
		return nil, fmt.Errorf("activity owner: %w", err)
	}
	if err := s.canSee(ctx, userID, owner); err != nil {
		return nil, err
	}

	return cache.Load(ctx, s.views, cache.CommentsKey(ref), func(ctx context.Context) ([]domain.Comment, error) {
		return s.comments.ListByActivity(ctx, ref)
	})
}
