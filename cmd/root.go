package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/restirnv/internal/config"
)

var (
	logLevel   string
	configPath string
	cfg        = config.Default()
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "restirnv",
	Short: "NV ray tracing extension loader for ReSTIR GI renderers",
	Long: `restirnv resolves the GL_NV_ray_tracing entry points from the OpenGL
driver and forwards pipeline binding and ray dispatch to them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
			cfg.LogLevel = logLevel
		}

		level, err := config.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}

		opts := &slog.HandlerOptions{Level: level}
		handler := slog.NewJSONHandler(os.Stdout, opts)
		logger = slog.New(handler)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
}
