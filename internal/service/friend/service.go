package friend

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

type edgeRepo interface {
	Create(ctx context.Context, e *domain.FriendEdge) (*domain.FriendEdge, error)
	ActiveBetween(ctx context.Context, a, b uuid.UUID) (*domain.FriendEdge, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.EdgeStatus) (*domain.FriendEdge, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListFriends(ctx context.Context, owner uuid.UUID) ([]domain.FriendEdge, error)
	ListReceived(ctx context.Context, owner uuid.UUID) ([]domain.FriendEdge, error)
	ListSent(ctx context.Context, owner uuid.UUID) ([]domain.FriendEdge, error)
	FriendIDs(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

type locker interface {
	LockPair(ctx context.Context, a, b uuid.UUID) error
	LockEdge(ctx context.Context, id uuid.UUID) (*domain.FriendEdge, error)
}

type sleepFeed interface {
	ListByAccounts(ctx context.Context, accounts []uuid.UUID, limit int) ([]domain.SleepRecord, error)
}

type sportFeed interface {
	ListByAccounts(ctx context.Context, accounts []uuid.UUID, limit int) ([]domain.SportRecord, error)
}

type mealFeed interface {
	ListByAccounts(ctx context.Context, accounts []uuid.UUID, limit int) ([]domain.MealRecord, error)
}

// Service manages friend edges and the activity feed built on them.
type Service struct {
	edges    edgeRepo
	accounts accountRepo
	locks    locker
	sleep    sleepFeed
	sport    sportFeed
	meals    mealFeed
	views    cache.Loader
	mut      *mutation.Coordinator
	log      *slog.Logger
}

// Deps groups the repositories of a friend Service.
type Deps struct {
	Edges    edgeRepo
	Accounts accountRepo
	Locks    locker
	Sleep    sleepFeed
	Sport    sportFeed
	Meals    mealFeed
	// Views caches lists and feeds. Optional.
	Views cache.Loader
}

// NewService creates a new friend Service.
func NewService(log *slog.Logger, deps Deps, mut *mutation.Coordinator) *Service {
	return &Service{
		edges:    deps.Edges,
		accounts: deps.Accounts,
		locks:    deps.Locks,
		sleep:    deps.Sleep,
		sport:    deps.Sport,
		meals:    deps.Meals,
		views:    deps.Views,
		mut:      mut,
		log:      log.With("service", "friend"),
	}
}
