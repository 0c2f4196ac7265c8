package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/dropfour/internal/config"
	"github.com/samdwyer/dropfour/internal/logging"
	"github.com/samdwyer/dropfour/internal/telemetry"
	"github.com/samdwyer/dropfour/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "dropfour",
	Short: "Connect Four for the terminal",
	Long: `dropfour plays two-player Connect Four in the terminal.
Pick a column with the arrow keys, number keys, or the mouse; pieces
drop to the lowest free cell and four in a line wins.`,
	SilenceUsage: true,
	RunE:         runGame,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yml", "Path to the config file")
	rootCmd.Flags().Int("width", 0, "Board width in columns (overrides config)")
	rootCmd.Flags().Int("height", 0, "Board height in rows (overrides config)")
}

func runGame(cmd *cobra.Command, _ []string) error {
	// .env is a local-development convenience; absence is fine.
	_ = godotenv.Load()

	configPath, _ := cmd.Flags().GetString("config")
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		conf.BoardWidth = w
	}
	if h, _ := cmd.Flags().GetInt("height"); h > 0 {
		conf.BoardHeight = h
	}

	logger, closer, err := logging.New(conf.LogLevel, conf.LogFile)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx := context.Background()

	if conf.Telemetry {
		shutdown, setupErr := telemetry.Setup(ctx)
		if setupErr != nil {
			logger.Warn().Err(setupErr).Msg("telemetry setup failed, continuing without")
			telemetry.Disable()
		} else {
			defer func() {
				if shutdownErr := shutdown(ctx); shutdownErr != nil {
					logger.Error().Err(shutdownErr).Msg("telemetry shutdown failed")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	logger.Info().Int("width", conf.BoardWidth).Int("height", conf.BoardHeight).
		Msg("starting dropfour")

	app, err := ui.NewApp(conf, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
