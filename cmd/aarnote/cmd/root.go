package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"aarnote/cmd/aarnote/cmd/types"
	"aarnote/internal/app"
	"aarnote/internal/config"
	"aarnote/internal/utils/logger"
)

var (
	cfg         *config.Config
	log         *slog.Logger
	application *app.App
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "aarnote",
	Short: "aarnote - local note keeping",
	Long: `aarnote keeps your notes on this machine: sign up once, then
create, edit, sort, and delete notes. Notes may carry an attached
image reference. Nothing ever leaves the device.`,
	PersistentPreRunE: setupApp,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if application != nil {
			return application.Close()
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if debug {
		cfg.Env = config.EnvLocal
	}

	log = logger.New(cfg.Env)

	application, err = app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.AppKey, application))

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}
