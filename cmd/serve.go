package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/naka-gawa/github-portfolio/internal/preference"
	"github.com/naka-gawa/github-portfolio/internal/server"
	"github.com/naka-gawa/github-portfolio/internal/usecase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio page over HTTP",
	Long: `Loads the projects once and serves the portfolio page with its category
filters, theme toggle, README pages and contact form. POST /reload loads the
projects again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			cfg.Listen = listen
		}
		githubGateway, err := newGateway(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}

		srv := server.New(server.Config{
			Owner:          cfg.Owner,
			Addr:           cfg.Listen,
			AllowedOrigins: cfg.AllowedOrigins,
		}, usecase.NewLoader(githubGateway, logger, loaderOptions(cfg)...), preference.NewStore(cfg.PreferencesPath), logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// A failed load is shown on the page; keep serving.
		if err := srv.Reload(ctx); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load projects: %v\n", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Serving the portfolio of %s on http://%s\n", cfg.Owner, cfg.Listen)
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Address to listen on (overrides the config)")
}
