package api

import (
	"net/http"

	"github.com/constructml/quadrant/internal/chart"
	"github.com/constructml/quadrant/internal/metrics"
	"github.com/constructml/quadrant/internal/quadrant"
)

type ChartHandler struct {
	data DataProvider
	opts ChartOptions
}

func NewChartHandler(data DataProvider, opts ChartOptions) *ChartHandler {
	return &ChartHandler{data: data, opts: opts}
}

// Spec handles GET /api/v1/chart: the full chart specification consumed by
// the dashboard page. Repeatable ?category= narrows the point set; the
// quadrant geometry is unaffected.
func (h *ChartHandler) Spec(w http.ResponseWriter, r *http.Request) {
	records, err := h.data.Records(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	records = chart.Filter(records, r.URL.Query()["category"])

	a := quadrant.Analyze(records, h.opts.Thresholds)
	spec, err := chart.BuildSpec(a, chart.Options{Title: h.opts.Title, Subtitle: h.opts.Subtitle})
	if err != nil {
		metrics.ChartBuildsTotal.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	metrics.ChartBuildsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, spec)
}
