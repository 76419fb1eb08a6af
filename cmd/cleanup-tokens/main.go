// Command cleanup-tokens deletes expired refresh tokens. It is meant for an
// external cron job when the in-process sweep is disabled with
// AUTH_CLEANUP_INTERVAL=0.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/app"
	"github.com/heartmarshall/vitalog-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	c := app.NewContainer(cfg, logger, pool)
	defer c.Close() //nolint:errcheck

	deleted, err := c.Auth.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed", slog.Int("deleted", deleted))
}
