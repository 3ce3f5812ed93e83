package cmd

import (
	"fmt"

	"github.com/naka-gawa/github-portfolio/internal/preference"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Shows whether the dark theme is enabled",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := preferenceStore(cmd)
		if err != nil {
			return err
		}
		enabled, err := store.DarkTheme()
		if err != nil {
			return err
		}
		printTheme(cmd, enabled)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switches between the light and the dark theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := preferenceStore(cmd)
		if err != nil {
			return err
		}
		enabled, err := store.Toggle()
		if err != nil {
			return err
		}
		printTheme(cmd, enabled)
		return nil
	},
}

func preferenceStore(cmd *cobra.Command) (*preference.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return preference.NewStore(cfg.PreferencesPath), nil
}

func printTheme(cmd *cobra.Command, enabled bool) {
	state := "off"
	if enabled {
		state = "on"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "dark theme: %s\n", state)
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeToggleCmd)
}
