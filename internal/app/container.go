package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/cascade"
	catalogrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/catalog"
	commentrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/comment"
	friendrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/friend"
	mealrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/meal"
	sleeprepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/sleep"
	sportrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/sport"
	tokenrepo "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/vitalog-backend/internal/auth"
	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/config"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
	"github.com/heartmarshall/vitalog-backend/internal/observability"
	"github.com/heartmarshall/vitalog-backend/internal/service/account"
	authsvc "github.com/heartmarshall/vitalog-backend/internal/service/auth"
	"github.com/heartmarshall/vitalog-backend/internal/service/catalog"
	"github.com/heartmarshall/vitalog-backend/internal/service/comment"
	"github.com/heartmarshall/vitalog-backend/internal/service/diet"
	"github.com/heartmarshall/vitalog-backend/internal/service/friend"
	"github.com/heartmarshall/vitalog-backend/internal/service/sleep"
	"github.com/heartmarshall/vitalog-backend/internal/service/sport"
)

// Container holds the wired services shared by the server and the CLI.
type Container struct {
	Metrics     *observability.Metrics
	Views       *cache.Store
	Broadcaster *cache.Broadcaster
	Coordinator *mutation.Coordinator
	JWT         *auth.JWTManager
	Origin      string

	Auth    *authsvc.Service
	Account *account.Service
	Catalog *catalog.Service
	Sleep   *sleep.Service
	Sport   *sport.Service
	Diet    *diet.Service
	Comment *comment.Service
	Friend  *friend.Service
}

// NewContainer wires repositories, the mutation protocol and services on
// top of pool.
func NewContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Container {
	c := &Container{
		Metrics: observability.New(),
		Origin:  instanceID(),
	}

	c.Views = cache.NewStore(logger, cfg.Cache.Size, cfg.Cache.TTL, cache.WithObserver(c.Metrics))
	invalidators := cache.Fanout{c.Views}
	if cfg.Cache.BroadcastEnabled() {
		c.Broadcaster = cache.NewBroadcaster(
			cache.NewKafkaWriter(cfg.Cache.BrokerList(), cfg.Cache.Topic),
			c.Origin,
		)
		invalidators = append(invalidators, c.Broadcaster)
	}

	txm := postgres.NewTxManager(pool)
	c.Coordinator = mutation.NewCoordinator(logger, txm,
		mutation.WithInvalidator(invalidators),
		mutation.WithRecorder(c.Metrics),
	)
	locks := postgres.NewLocker(pool, cfg.Locks.RowTimeout, cfg.Locks.PairTimeout,
		postgres.WithWaitObserver(c.Metrics),
	)
	cascades := cascade.NewDefault(pool, c.Metrics)

	accounts := accountrepo.New(pool)
	tokens := tokenrepo.New(pool)
	catalogs := catalogrepo.New(pool)
	edges := friendrepo.New(pool)
	sleeps := sleeprepo.New(pool)
	sports := sportrepo.New(pool)
	meals := mealrepo.New(pool)
	comments := commentrepo.New(pool)

	c.JWT = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	c.Auth = authsvc.NewService(logger, accounts, tokens, cascades, c.JWT, c.Coordinator, cfg.Auth)
	c.Account = account.NewService(logger, accounts, edges, comments, locks, cascades, c.Views, c.Coordinator)
	c.Catalog = catalog.NewService(logger, catalogs, cascades, c.Views, c.Coordinator)
	c.Sleep = sleep.NewService(logger, sleeps, locks, cascades, edges, c.Coordinator)
	c.Sport = sport.NewService(logger, sports, catalogs, locks, cascades, edges, c.Coordinator)
	c.Diet = diet.NewService(logger, meals, catalogs, locks, cascades, edges, c.Coordinator)
	c.Comment = comment.NewService(logger, comments, locks, edges, c.Views, c.Coordinator)
	c.Friend = friend.NewService(logger, friend.Deps{
		Edges:    edges,
		Accounts: accounts,
		Locks:    locks,
		Sleep:    sleeps,
		Sport:    sports,
		Meals:    meals,
		Views:    c.Views,
	}, c.Coordinator)

	return c
}

// Close releases the broadcast writer.
func (c *Container) Close() error {
	if c.Broadcaster == nil {
		return nil
	}
	if err := c.Broadcaster.Close(); err != nil {
		return fmt.Errorf("close broadcaster: %w", err)
	}
	return nil
}

// instanceID names this process in invalidation messages.
func instanceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "vitalog"
	}
	return host + "-" + uuid.NewString()[:8]
}
