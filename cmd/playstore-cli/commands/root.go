package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"playstore-scraper/internal/components/telemetry"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	tel        telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "playstore-cli",
	Short: "playstore-cli scrapes app reviews from the play store.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "playstore-cli")
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no telemetry.json5 found, skipping otel setup")
			return
		}
		if err != nil {
			slog.Warn("failed to setup telemetry", "err", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logs.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "playstore.json5", "The config file to read defaults from.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
