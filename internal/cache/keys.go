package cache

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Cache keys of the derived views.
func FeedKey(account uuid.UUID) string     { return "feed:" + account.String() }
func FriendsKey(account uuid.UUID) string  { return "friends:" + account.String() }
func ReceivedKey(account uuid.UUID) string { return "received:" + account.String() }
func SentKey(account uuid.UUID) string     { return "sent:" + account.String() }
func ProfileKey(account uuid.UUID) string  { return "profile:" + account.String() }

func CommentsKey(ref domain.ActivityRef) string {
	return "comments:" + string(ref.Kind) + ":" + ref.ID.String()
}

const SportsKey = "catalog:sports"

// Keys returns the cache keys a committed change described by scope makes
// stale. A food change affects every cached meal and returns all=true.
func Keys(scope domain.Scope) (keys []string, all bool) {
	accounts := append([]uuid.UUID{scope.OwnerID}, scope.Extra...)

	switch scope.Kind {
	case domain.ResourceFood:
		return nil, true

	case domain.ResourceSleepRecord, domain.ResourceSportRecord, domain.ResourceMealRecord:
		keys = append(keys, FeedKey(scope.OwnerID))
		if scope.Activity != nil {
			keys = append(keys, CommentsKey(*scope.Activity))
		}

	case domain.ResourceComment:
		if scope.Activity != nil {
			keys = append(keys, CommentsKey(*scope.Activity))
		}

	case domain.ResourceFriendEdge:
		for _, id := range accounts {
			keys = append(keys, FriendsKey(id), ReceivedKey(id), SentKey(id))
		}

	case domain.ResourceProfile:
		// Sport calories are derived from the profile.
		keys = append(keys, ProfileKey(scope.OwnerID), FeedKey(scope.OwnerID))

	case domain.ResourceAccount:
		for _, id := range accounts {
			keys = append(keys, FriendsKey(id), ReceivedKey(id), SentKey(id))
		}
		keys = append(keys, ProfileKey(scope.OwnerID), FeedKey(scope.OwnerID))
	}
	return keys, false
}
