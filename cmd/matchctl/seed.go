package main

import (
	"context"
	"fmt"

	"mentor-match/internal/app"
	"mentor-match/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the skills catalog and, with --demo, sample mentors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		demo, _ := cmd.Flags().GetBool("demo")

		seeders := seeder.Defaults()
		if demo {
			seeders = seeder.WithDemo()
		}

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			runner := seeder.Runner{Seeders: seeders, Log: c.Log}
			if err := runner.Run(ctx, c.DB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d seeders applied\n", len(seeders))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Bool("demo", false, "also create sample mentor accounts")
}
