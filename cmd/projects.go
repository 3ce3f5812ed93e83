package cmd

import (
	"fmt"

	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/naka-gawa/github-portfolio/internal/presenter"
	"github.com/naka-gawa/github-portfolio/internal/usecase"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Loads the portfolio projects and prints them",
	Long: `Loads the owner's repositories (newest updated first), reads their READMEs
in small paced batches and prints the resulting project cards, optionally
narrowed by a category filter (all, python, spark, aws).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		format, _ := cmd.Flags().GetString("format")
		withSummary, _ := cmd.Flags().GetBool("summary")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if !validFormat(format) {
			return fmt.Errorf("invalid --format %q: must be one of text, json, markdown", format)
		}

		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		githubGateway, err := newGateway(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		// Verbose mode logs every batch, so the bar would only get in the way.
		opts := loaderOptions(cfg)
		var bar *progressbar.ProgressBar
		if !verbose {
			opts = append(opts, usecase.WithProgress(func(done, total int) {
				if bar == nil {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetWriter(cmd.ErrOrStderr()),
						progressbar.OptionSetDescription("Loading projects"),
						progressbar.OptionSetWidth(40),
						progressbar.OptionShowCount(),
						progressbar.OptionClearOnFinish(),
					)
				}
				_ = bar.Set(done)
			}))
		}
		loader := usecase.NewLoader(githubGateway, logger, opts...)

		state := presenter.NewState()
		state.SelectFilter(domain.FilterSelection(filter))
		state.LoadStarted()
		projects, loadErr := loader.Load(cmd.Context(), cfg.Owner)
		if bar != nil {
			_ = bar.Finish()
		}
		if loadErr != nil {
			state.LoadFailed(loadErr)
		} else {
			state.LoadCompleted(projects)
		}

		if err := renderProjects(cmd.OutOrStdout(), format, cfg.Owner, state, withSummary); err != nil {
			return fmt.Errorf("failed to render projects: %w", err)
		}
		return loadErr
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().StringP("filter", "f", string(domain.FilterAll), "Category filter: all, python, spark or aws")
	projectsCmd.Flags().String("format", formatText, "Output format: text, json or markdown")
	projectsCmd.Flags().Bool("summary", false, "Append the tag distribution of the shown projects")
}
