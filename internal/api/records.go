package api

import (
	"encoding/json"
	"net/http"

	"github.com/constructml/quadrant/internal/chart"
	"github.com/constructml/quadrant/internal/dataset"
	"github.com/constructml/quadrant/internal/quadrant"
)

type RecordsHandler struct {
	data DataProvider
	opts ChartOptions
}

func NewRecordsHandler(data DataProvider, opts ChartOptions) *RecordsHandler {
	return &RecordsHandler{data: data, opts: opts}
}

// List handles GET /api/v1/records. Repeatable ?category= narrows the set.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.data.Records(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	records = chart.Filter(records, r.URL.Query()["category"])
	if records == nil {
		records = []dataset.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

// Dataset handles GET /api/v1/dataset: snapshot metadata for the cached load.
func (h *RecordsHandler) Dataset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.data.Snapshot(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Quadrants handles GET /api/v1/quadrants: per-quadrant rollup.
func (h *RecordsHandler) Quadrants(w http.ResponseWriter, r *http.Request) {
	records, err := h.data.Records(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	a := quadrant.Analyze(records, h.opts.Thresholds)
	writeJSON(w, http.StatusOK, a.Summarize())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
