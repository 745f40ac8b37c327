package api

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/constructml/quadrant/internal/chart"
	"github.com/constructml/quadrant/internal/metrics"
	"github.com/constructml/quadrant/internal/quadrant"
)

type DashboardHandler struct {
	data DataProvider
	opts ChartOptions
	tmpl *template.Template
	errT *template.Template
}

func NewDashboardHandler(data DataProvider, opts ChartOptions) *DashboardHandler {
	return &DashboardHandler{
		data: data,
		opts: opts,
		tmpl: template.Must(template.New("dashboard").Parse(dashboardHTML)),
		errT: template.Must(template.New("error").Parse(errorHTML)),
	}
}

type dashboardData struct {
	Title    string
	Subtitle string
	Spec     template.JS
}

// Page handles GET /: the single dashboard page with the chart spec
// embedded, so one request carries everything the browser needs.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	records, err := h.data.Records(r.Context())
	if err != nil {
		h.renderError(w, "Dataset failed to load: "+err.Error())
		return
	}

	a := quadrant.Analyze(records, h.opts.Thresholds)
	spec, err := chart.BuildSpec(a, chart.Options{Title: h.opts.Title, Subtitle: h.opts.Subtitle})
	if err != nil {
		metrics.ChartBuildsTotal.WithLabelValues("error").Inc()
		h.renderError(w, "Chart failed to render: "+err.Error())
		return
	}
	metrics.ChartBuildsTotal.WithLabelValues("ok").Inc()

	specJSON, err := json.Marshal(spec)
	if err != nil {
		h.renderError(w, "Chart failed to render: "+err.Error())
		return
	}

	metrics.PageViewsTotal.Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = h.tmpl.Execute(w, dashboardData{
		Title:    h.opts.Title,
		Subtitle: h.opts.Subtitle,
		Spec:     template.JS(specJSON),
	})
}

// renderError surfaces load/render failures as a visible page rather than
// a blank chart.
func (h *DashboardHandler) renderError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = h.errT.Execute(w, map[string]string{"Message": msg})
}
