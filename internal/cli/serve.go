package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fantasyname/internal/app"
	"github.com/dmitrymomot/fantasyname/pkg/config"
	"github.com/dmitrymomot/fantasyname/pkg/logger"
)

func serveCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted.

Configuration is read from the environment (APP_ENV, LOG_LEVEL, HTTP_ADDR,
NAMEGEN_LIBRARY_FILE, NAMEGEN_MAX_BATCH, ...) and from --env-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(config.WithEnvFiles(envFile))
			if err != nil {
				return err
			}
			log, err := app.NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			// Library code logging through slog's package functions joins the same stream.
			logger.SetAsDefault(log)
			return app.Serve(cmd.Context(), cfg, log)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to read, skipped when missing")
	return cmd
}
