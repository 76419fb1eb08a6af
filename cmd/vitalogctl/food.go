package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFoodCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Maintain the food catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "retire <food-id>",
		Short: "Remove a food; meal items keep their grams and lose the reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid food id %q", args[0])
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

			out := s.c.Catalog.RetireFood(ctx, id)
			return reportOutcome(cmd.OutOrStdout(), opts, outcomeReport{
				Op:      "food.retire",
				Status:  out.Status,
				Message: out.Message,
				ID:      id,
			})
		},
	})

	return cmd
}
