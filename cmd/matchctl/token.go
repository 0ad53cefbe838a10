package main

import (
	"fmt"

	"mentor-match/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user, e.g. for an admin operator",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := uuidFlag(cmd, "user")
		if err != nil {
			return err
		}
		role, _ := cmd.Flags().GetString("role")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tok, err := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn).GenerateAccessToken(userID, role)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringP("user", "u", "", "user id")
	tokenCmd.Flags().StringP("role", "r", jwt.RoleStudent, "student, mentor or admin")
}
