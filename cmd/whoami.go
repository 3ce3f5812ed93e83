package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Checks the configured token and prints its owner",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Token == "" {
			return errors.New("GITHUB_TOKEN is not set")
		}
		githubGateway, err := newGateway(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		login, name, err := githubGateway.Viewer(cmd.Context())
		if err != nil {
			return err
		}
		if name != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", login, name)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), login)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
