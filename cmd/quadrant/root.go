package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/constructml/quadrant/internal/config"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "quadrant",
		Short: "Quadrant - algorithm suitability dashboard",
		Long: `Quadrant serves an interactive quadrant chart comparing machine-learning
algorithms on two axes: complexity fit and data fit, as scored for
construction-industry applications.

The dataset is a small curated table (embedded, CSV, or Postgres); the
serve command hosts the dashboard, and export/report produce static
artifacts from the same analysis.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	cmd.AddCommand(newServeCommand(&configPath))
	cmd.AddCommand(newValidateCommand(&configPath))
	cmd.AddCommand(newExportCommand(&configPath))
	cmd.AddCommand(newReportCommand(&configPath))

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// newLogger builds the process logger from config. JSON at info unless
// overridden.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
