package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(opts)
			if err != nil {
				return err
			}
			ctx, cancel := withTimeout(cmd, opts)
			defer cancel()
			return postgres.Migrate(ctx, s.cfg.Database.DSN, s.logger)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(opts)
			if err != nil {
				return err
			}
			ctx, cancel := withTimeout(cmd, opts)
			defer cancel()

			statuses, err := postgres.MigrationStatus(ctx, s.cfg.Database.DSN)
			if err != nil {
				return err
			}

			type row struct {
				Version int64  `json:"version"`
				Path    string `json:"path"`
				State   string `json:"state"`
			}
			rows := make([]row, 0, len(statuses))
			for _, st := range statuses {
				rows = append(rows, row{
					Version: st.Source.Version,
					Path:    st.Source.Path,
					State:   string(st.State),
				})
			}
			return report(cmd.OutOrStdout(), opts, rows, func(w io.Writer) {
				for _, r := range rows {
					fmt.Fprintf(w, "%05d  %-10s %s\n", r.Version, r.State, r.Path)
				}
			})
		},
	})

	return cmd
}
