package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/constructml/quadrant/internal/dataset"
	"github.com/constructml/quadrant/internal/quadrant"
)

// DataProvider serves the cached record set. Implemented by dataset.Cache;
// tests swap in a stub.
type DataProvider interface {
	Records(ctx context.Context) ([]dataset.Record, error)
	Snapshot(ctx context.Context) (dataset.Snapshot, error)
}

// ChartOptions carries the presentation settings handlers need.
type ChartOptions struct {
	Title      string
	Subtitle   string
	Thresholds quadrant.Thresholds
}

func NewRouter(data DataProvider, opts ChartOptions, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(300))

	dashboard := NewDashboardHandler(data, opts)
	records := NewRecordsHandler(data, opts)
	charts := NewChartHandler(data, opts)

	r.Get("/", dashboard.Page)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/records", records.List)
		r.Get("/dataset", records.Dataset)
		r.Get("/quadrants", records.Quadrants)
		r.Get("/chart", charts.Spec)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
