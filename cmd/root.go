package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftcalc/internal/config"
	"github.com/misterclayt0n/liftcalc/internal/units"
	"github.com/spf13/cobra"
)

var (
	configPath string
	unitFlag   string
	verbose    bool

	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:           "liftcalc",
	Short:         "Estimate one-rep maxes and convert between pounds and kilograms",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		if unitFlag != "" {
			u, err := units.ParseUnit(unitFlag)
			if err != nil {
				return err
			}
			cfg.Display.Unit = u
		}
		if !cfg.Display.Color {
			color.NoColor = true
		}

		logger.Debug("configuration loaded", "unit", cfg.Display.Unit, "format", cfg.Display.Format)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/liftcalc/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&unitFlag, "unit", "u", "", "Unit system: metric or imperial")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}
