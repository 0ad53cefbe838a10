package main

import (
	"context"

	"mentor-match/internal/app"
	"mentor-match/internal/usecase"

	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Compute a student's readiness score",
	RunE: func(cmd *cobra.Command, _ []string) error {
		studentID, err := uuidFlag(cmd, "student")
		if err != nil {
			return err
		}
		refresh, _ := cmd.Flags().GetBool("refresh")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			var rep usecase.ReadinessReport
			if refresh {
				rep, err = c.Readiness.Refresh(ctx, studentID)
			} else {
				rep, err = c.Readiness.Get(ctx, studentID)
			}
			if err != nil {
				return err
			}
			return renderReadiness(cmd.OutOrStdout(), rep)
		})
	},
}

func init() {
	rootCmd.AddCommand(readinessCmd)

	readinessCmd.Flags().StringP("student", "s", "", "student user id")
	readinessCmd.Flags().Bool("refresh", false, "store the computed score and drop the student's cached ranking")
}
