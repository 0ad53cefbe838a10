package main

import (
	"context"

	"mentor-match/internal/app"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank mentors for a student and print the list",
	RunE: func(cmd *cobra.Command, _ []string) error {
		studentID, err := uuidFlag(cmd, "student")
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		fresh, _ := cmd.Flags().GetBool("fresh")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if fresh {
				if err := c.MentorMatching.Invalidate(ctx, studentID); err != nil {
					return err
				}
			}
			matches, err := c.MentorMatching.RankMentors(ctx, studentID, limit)
			if err != nil {
				return err
			}
			return renderMatches(cmd.OutOrStdout(), matches)
		})
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("student", "s", "", "student user id")
	rankCmd.Flags().IntP("limit", "n", 0, "number of mentors to print (0 uses the configured default)")
	rankCmd.Flags().Bool("fresh", false, "drop the cached ranking before ranking")
}
