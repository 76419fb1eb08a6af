package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vitalog-backend/internal/auth"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access and refresh token maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "issue <account-id>",
		Short: "Print a short-lived access token for an account",
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
			jwt := auth.NewJWTManager(s.cfg.Auth.JWTSecret, s.cfg.Auth.JWTIssuer, s.cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(id)
			if err != nil {
				return err
			}

			expires := time.Now().Add(jwt.AccessTTL()).UTC()
			return report(cmd.OutOrStdout(), opts, map[string]any{
				"account_id":   id,
				"access_token": token,
				"expires_at":   expires,
			}, func(w io.Writer) {
				fmt.Fprintln(w, token)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			n, err := s.c.Auth.CleanupExpiredTokens(ctx)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), opts, map[string]int{"deleted": n}, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %d expired refresh tokens\n", n)
			})
		},
	})

	return cmd
}
