package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Create adds a comment to an activity of the caller or of an accepted
// friend. The activity row is share-locked so that a concurrent delete of
// the activity waits for this transaction and then removes the comment.
func (s *Service) Create(ctx context.Context, in CreateInput) mutation.Outcome[*domain.Comment] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var owner uuid.UUID

	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.Comment]{
		Op: "comment.create",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			owner, err = s.locks.ShareOwned(ctx, in.Activity.Kind.Resource(), in.Activity.ID)
			return err
		},
		Guard: func(ctx context.Context) error {
			return s.canSee(ctx, userID, owner)
		},
		Apply: func(ctx context.Context) (*domain.Comment, error) {
			return s.comments.Create(ctx, &domain.Comment{
				ID:        uuid.New(),
				AccountID: userID,
				Activity:  in.Activity,
				Content:   domain.CleanText(in.Content),
			})
		},
		Scopes: func(c *domain.Comment) []domain.Scope {
			return []domain.Scope{domain.ActivityScope(domain.ResourceComment, owner, c.Activity)}
		},
	})
	if out.OK() {
		s.log.InfoContext(ctx, "comment created",
			slog.String("user_id", userID.String()),
			slog.String("comment_id", out.Value.ID.String()),
			slog.String("activity", string(in.Activity.Kind)),
		)
	}
	return out
}

// Update replaces the text of a comment written by the caller.
func (s *Service) Update(ctx context.Context, in UpdateInput) mutation.Outcome[*domain.Comment] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var author uuid.UUID

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.Comment]{
		Op: "comment.update",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return in.Validate()
		},
		Lock: func(ctx context.Context) (err error) {
			author, err = s.locks.LockOwned(ctx, domain.ResourceComment, in.ID)
			return err
		},
		Guard: func(ctx context.Context) error {
			return mutation.CheckOwner(author, userID)
		},
		Apply: func(ctx context.Context) (*domain.Comment, error) {
			return s.comments.UpdateContent(ctx, in.ID, domain.CleanText(in.Content))
		},
		Scopes: func(c *domain.Comment) []domain.Scope {
			return []domain.Scope{domain.ActivityScope(domain.ResourceComment, author, c.Activity)}
		},
	})
}

// Delete removes a comment written by the caller.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) mutation.Outcome[*domain.Comment] {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	var (
		author  uuid.UUID
		current *domain.Comment
	)

	return mutation.Run(ctx, s.mut, mutation.Mutation[*domain.Comment]{
		Op: "comment.delete",
		Validate: func() error {
			if !ok {
				return domain.ErrUnauthorized
			}
			return nil
		},
		Lock: func(ctx context.Context) (err error) {
			author, err = s.locks.LockOwned(ctx, domain.ResourceComment, id)
			return err
		},
		Guard: func(ctx context.Context) (err error) {
			if err := mutation.CheckOwner(author, userID); err != nil {
				return err
			}
			current, err = s.comments.GetByID(ctx, id)
			return err
		},
		Apply: func(ctx context.Context) (*domain.Comment, error) {
			if err := s.comments.Delete(ctx, id); err != nil {
				return nil, err
			}
			return current, nil
		},
		Scopes: func(c *domain.Comment) []domain.Scope {
			return []domain.Scope{domain.ActivityScope(domain.ResourceComment, author, c.Activity)}
		},
	})
}
