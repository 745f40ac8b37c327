package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/constructml/quadrant/internal/api"
	"github.com/constructml/quadrant/internal/dataset"
	"github.com/constructml/quadrant/internal/metrics"
	"github.com/constructml/quadrant/internal/quadrant"
)

func newServeCommand(configPath *string) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			logger := newLogger(cfg)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			src, closeSource, err := buildSource(ctx, cfg)
			if err != nil {
				logger.Error("failed to open dataset source", "error", err)
				return err
			}
			defer closeSource()

			// Fail fast: the dataset is static, so a bad file should
			// stop the server at startup, not at first page view.
			cache := dataset.NewCache(src)
			start := time.Now()
			records, err := cache.Records(ctx)
			if err != nil {
				logger.Error("failed to load dataset", "source", src.Name(), "error", err)
				return err
			}
			metrics.DatasetLoadSeconds.Observe(time.Since(start).Seconds())
			logger.Info("dataset loaded", "source", src.Name(), "rows", len(records))

			opts := api.ChartOptions{
				Title:    cfg.Chart.Title,
				Subtitle: cfg.Chart.Subtitle,
				Thresholds: quadrant.Thresholds{
					Complexity: cfg.Chart.ComplexityThreshold,
					Data:       cfg.Chart.DataThreshold,
				},
			}

			appServer := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
				Handler: api.NewRouter(cache, opts, logger),
			}
			metricsServer := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.MetricsPort),
				Handler: api.NewMetricsRouter(),
			}

			go func() {
				logger.Info("dashboard server starting", "addr", appServer.Addr)
				if err := appServer.ListenAndServe(); err != http.ErrServerClosed {
					logger.Error("dashboard server error", "error", err)
				}
			}()
			go func() {
				logger.Info("metrics server starting", "addr", metricsServer.Addr)
				if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
					logger.Error("metrics server error", "error", err)
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			logger.Info("shutting down...")
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			_ = appServer.Shutdown(shutdownCtx)
			_ = metricsServer.Shutdown(shutdownCtx)

			logger.Info("shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "bind address (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")

	return cmd
}
