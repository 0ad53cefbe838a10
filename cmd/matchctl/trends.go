package main

import (
	"context"
	"fmt"

	"mentor-match/internal/app"

	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Research topic trends of mentors",
}

var trendsIngestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Scrape publication pages and store topic trends",
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, _ := cmd.Flags().GetBool("all")

		if all {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				n, err := c.Ingestor.IngestAll(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d mentors\n", n)
				return err
			})
		}

		mentorID, err := uuidFlag(cmd, "mentor")
		if err != nil {
			return err
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			res, err := c.Ingestor.Ingest(ctx, mentorID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d publications analysed\n", res.Publications)
			return renderTrends(cmd.OutOrStdout(), res.Trends)
		})
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.AddCommand(trendsIngestCmd)

	trendsIngestCmd.Flags().StringP("mentor", "m", "", "mentor profile id")
	trendsIngestCmd.Flags().Bool("all", false, "refresh every active mentor with a publications page")
}
