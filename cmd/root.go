// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/naka-gawa/github-portfolio/internal/config"
	"github.com/naka-gawa/github-portfolio/internal/gateway"
	"github.com/naka-gawa/github-portfolio/internal/usecase"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "github-portfolio",
	Short: "A CLI tool to present a GitHub user's repositories as a portfolio.",
	Long: `github-portfolio loads a GitHub user's public repositories and their
README excerpts, tags them by category (python, spark, aws, ...) and shows
them as project cards in the terminal, as JSON or Markdown, or as an HTML
portfolio page served over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to the YAML config file")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "GitHub user whose repositories are shown (overrides the config)")
}

// newLogger discards all logs unless --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}
	return logger
}

// loadConfig loads the config file named by --config and applies --owner.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if owner, _ := cmd.Flags().GetString("owner"); owner != "" {
		cfg.Owner = owner
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGateway(cfg *config.Config, logger *log.Logger) (*gateway.GitHubGateway, error) {
	return gateway.NewGitHubGateway(gateway.Options{
		Token:    cfg.Token,
		BaseURL:  cfg.BaseURL,
		PerPage:  cfg.PerPage,
		MaxPages: cfg.MaxPages,
	}, logger)
}

func loaderOptions(cfg *config.Config) []usecase.LoaderOption {
	return []usecase.LoaderOption{
		usecase.WithLimit(cfg.Limit),
		usecase.WithBatchSize(cfg.BatchSize),
		usecase.WithBatchPause(cfg.BatchPause),
	}
}
