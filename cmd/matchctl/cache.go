package main

import (
	"context"
	"fmt"

	"mentor-match/internal/app"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached mentor rankings",
}

var cacheInvalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "Drop one student's cached ranking, or every ranking when --student is omitted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, _ := cmd.Flags().GetString("student")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if raw == "" {
				if err := c.MentorMatching.InvalidateAll(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "all cached rankings dropped")
				return nil
			}
			studentID, err := uuidFlag(cmd, "student")
			if err != nil {
				return err
			}
			if err := c.MentorMatching.Invalidate(ctx, studentID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cached ranking dropped for %s\n", studentID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInvalidateCmd)

	cacheInvalidateCmd.Flags().StringP("student", "s", "", "student user id")
}
