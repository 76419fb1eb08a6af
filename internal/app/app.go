package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/cache"
	"github.com/heartmarshall/vitalog-backend/internal/config"
	"github.com/heartmarshall/vitalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/vitalog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	c := NewContainer(cfg, logger, pool)
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("close container", slog.String("error", err.Error()))
		}
	}()

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	checks := []rest.Check{{Name: "database", Required: true, Probe: pool}}
	if cfg.Cache.BroadcastEnabled() {
		brokers := cfg.Cache.BrokerList()
		checks = append(checks, rest.Check{
			Name:  "kafka",
			Probe: rest.PingFunc(func(ctx context.Context) error {
				return cache.PingBrokers(ctx, brokers)
			}),
		})
	}

	handler := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(c.Auth, logger),
		Account:     rest.NewAccountHandler(c.Account, logger),
		Sleep:       rest.NewSleepHandler(c.Sleep, logger),
		Sport:       rest.NewSportHandler(c.Sport, logger),
		Meal:        rest.NewMealHandler(c.Diet, logger),
		Comment:     rest.NewCommentHandler(c.Comment, logger),
		Friend:      rest.NewFriendHandler(c.Friend, logger),
		Catalog:     rest.NewCatalogHandler(c.Catalog, logger),
		Health:      rest.NewHealthHandler(Version, checks...),
		Metrics:     metricsHandler(cfg.Metrics, c),
		MetricsPath: cfg.Metrics.Path,
	}, rest.RouterOptions{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(c.Auth),
		},
		AuthLimit: limiter.Limit(cfg.Server.AuthRateLimit),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Cache.BroadcastEnabled() {
		groupID := cfg.Cache.GroupID
		if groupID == "" {
			groupID = "vitalog-" + c.Origin
		}
		reader := cache.NewKafkaReader(cfg.Cache.BrokerList(), cfg.Cache.Topic, groupID)
		sub := cache.NewSubscriber(logger, reader, c.Views, c.Origin)
		defer sub.Close() //nolint:errcheck
		g.Go(func() error { return sub.Run(gctx) })
	}

	if cfg.Auth.CleanupInterval > 0 {
		g.Go(func() error {
			sweepTokens(gctx, logger, c, cfg.Auth.CleanupInterval)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

func metricsHandler(cfg config.MetricsConfig, c *Container) http.Handler {
	if !cfg.Enabled {
		return nil
	}
	return c.Metrics.Handler()
}

// sweepTokens deletes expired refresh tokens every interval until ctx ends.
func sweepTokens(ctx context.Context, logger *slog.Logger, c *Container, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := c.Auth.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.WarnContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.InfoContext(ctx, "expired tokens deleted", slog.Int("count", n))
			}
		}
	}
}
