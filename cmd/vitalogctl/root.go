package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/app"
	"github.com/heartmarshall/vitalog-backend/internal/config"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

var validFormats = []string{"text", "json", "yaml"}

type rootOptions struct {
	Format     string
	Timeout    time.Duration
	ConfigPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vitalogctl",
		Short:         "Operate a Vitalog deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", time.Minute, "deadline for the whole command")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newAccountCommand(opts))
	cmd.AddCommand(newFoodCommand(opts))
	cmd.AddCommand(newTokenCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// session is the configuration, logger and, once connected, the wired
// container a command runs against.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	c      *app.Container
	close  func()
}

func loadSession(opts *rootOptions) (*session, error) {
	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: app.NewLogger(cfg.Log), close: func() {}}, nil
}

// connect opens the pool and wires the container.
func (s *session) connect(ctx context.Context) error {
	pool, err := postgres.NewPool(ctx, s.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	s.c = app.NewContainer(s.cfg, s.logger, pool)
	s.close = func() {
		if err := s.c.Close(); err != nil {
			s.logger.Warn("close container", slog.String("error", err.Error()))
		}
		pool.Close()
	}
	return nil
}

func withTimeout(cmd *cobra.Command, opts *rootOptions) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), opts.Timeout)
}

// report prints v as indented JSON, as YAML or through text.
func report(w io.Writer, opts *rootOptions, v any, text func(io.Writer)) error {
	switch opts.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	text(w)
	return nil
}

type outcomeReport struct {
	Op      string        `json:"op"                yaml:"op"`
	Status  domain.Status `json:"status"            yaml:"status"`
	Name    string        `json:"status_name"       yaml:"status_name"`
	Message string        `json:"message,omitempty" yaml:"message,omitempty"`
	ID      any           `json:"id,omitempty"      yaml:"id,omitempty"`
}

// reportOutcome prints a mutation result and turns a failure into an error
// so the process exits non-zero.
func reportOutcome(w io.Writer, opts *rootOptions, r outcomeReport) error {
	r.Name = r.Status.String()
	if err := report(w, opts, r, func(w io.Writer) {
		fmt.Fprintf(w, "%s: %s", r.Op, r.Name)
		if r.Message != "" {
			fmt.Fprintf(w, " (%s)", r.Message)
		}
		fmt.Fprintln(w)
	}); err != nil {
		return err
	}
	if !r.Status.OK() {
		return fmt.Errorf("%s failed with status %d", r.Op, r.Status)
	}
	return nil
}

func newVersionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := app.Build()
			return report(cmd.OutOrStdout(), opts, b, func(w io.Writer) {
				fmt.Fprintln(w, b.String())
			})
		},
	}
}
