package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/vitalog-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Every record carries the service name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(
		slog.String("service", "vitalog"),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newLogger picks the handler for cfg.Format: "json" for production, anything
// else falls back to text with source locations.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	jsonFormat := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
