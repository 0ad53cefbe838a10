package main

import (
	"context"

	"mentor-match/internal/app"
	"mentor-match/internal/database/migration"
	"mentor-match/internal/database/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Inspect schema migrations",
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List embedded migrations and when each was applied",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			runner := migration.Runner{FS: migrations.Files, Logger: c.Log}
			statuses, err := runner.Status(ctx, c.DB.SQLDB())
			if err != nil {
				return err
			}
			return renderMigrations(cmd.OutOrStdout(), statuses)
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}
