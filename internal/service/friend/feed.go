package friend

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Feed returns recent activity, newest first. With target equal to the
// caller (or uuid.Nil) it merges the caller's records with those of every
// accepted friend; otherwise target must be an accepted friend and only
// their records are returned.
func (s *Service) Feed(ctx context.Context, target uuid.UUID, limit int) ([]domain.FeedEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > domain.DefaultListLimit {
		limit = domain.DefaultListLimit
	}
	if target == uuid.Nil {
		target = userID
	}

	accounts := []uuid.UUID{target}
	if target == userID {
		ids, err := s.edges.FriendIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("friend ids: %w", err)
		}
		accounts = append(accounts, ids...)
	} else {
		if _, err := s.accounts.GetByID(ctx, target); err != nil {
			return nil, fmt.Errorf("feed target: %w", err)
		}
		friends, err := s.edges.AreFriends(ctx, userID, target)
		if err != nil {
			return nil, fmt.Errorf("check friendship: %w", err)
		}
		if !friends {
			return nil, domain.Reject(domain.StatusUnauthorized, "not a friend")
		}
	}

	var out []domain.FeedEntry
	for _, id := range accounts {
		entries, err := cache.Load(ctx, s.views, cache.FeedKey(id), func(ctx context.Context) ([]domain.FeedEntry, error) {
			return s.activity(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}

	sortFeed(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// activity loads the newest records of one account across all kinds.
func (s *Service) activity(ctx context.Context, account uuid.UUID) ([]domain.FeedEntry, error) {
	ids := []uuid.UUID{account}
	limit := domain.DefaultListLimit

	sleep, err := s.sleep.ListByAccounts(ctx, ids, limit)
	if err != nil {
		return nil, fmt.Errorf("feed sleep: %w", err)
	}
	sport, err := s.sport.ListByAccounts(ctx, ids, limit)
	if err != nil {
		return nil, fmt.Errorf("feed sport: %w", err)
	}
	meals, err := s.meals.ListByAccounts(ctx, ids, limit)
	if err != nil {
		return nil, fmt.Errorf("feed meals: %w", err)
	}

	out := make([]domain.FeedEntry, 0, len(sleep)+len(sport)+len(meals))
	for i := range sleep {
		out = append(out, domain.FeedEntry{Kind: domain.ActivitySleep, CreatedAt: sleep[i].CreatedAt, Sleep: &sleep[i]})
	}
	for i := range sport {
		out = append(out, domain.FeedEntry{Kind: domain.ActivitySport, CreatedAt: sport[i].CreatedAt, Sport: &sport[i]})
	}
	for i := range meals {
		out = append(out, domain.FeedEntry{Kind: domain.ActivityMeal, CreatedAt: meals[i].CreatedAt, Meal: &meals[i]})
	}
	sortFeed(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortFeed(entries []domain.FeedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
