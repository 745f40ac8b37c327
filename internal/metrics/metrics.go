package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quadrant_page_views_total",
			Help: "Total dashboard page renders",
		},
	)

	ChartBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quadrant_chart_builds_total",
			Help: "Total chart spec builds",
		},
		[]string{"outcome"}, // ok, error
	)

	DatasetLoadSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quadrant_dataset_load_seconds",
			Help:    "Dataset load duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quadrant_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"method", "path", "status"},
	)
)
