package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAccountCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Operate on accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id %q: %w", args[0], err)
			}

			s, err := loadSession(opts)
			if err != nil {
				return err
			}
			ctx, cancel := withTimeout(cmd, opts)
			defer cancel()
			if err := s.connect(ctx); err != nil {
				return err
			}
			defer s.close()

			out := s.c.Account.Remove(ctx, id)
			return reportOutcome(cmd.OutOrStdout(), opts, outcomeReport{
				Op:      "account.delete",
				Status:  out.Status,
				Message: out.Message,
				ID:      id,
			})
		},
	})

	return cmd
}
