package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required header columns. plot_complexity, plot_data and frequency are
// optional; plot coordinates default to the true scores.
var requiredColumns = []string{"name", "category", "complexity_fit", "data_fit"}

// CSVSource loads records from a header CSV on disk.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource { return &CSVSource{Path: path} }

func (s *CSVSource) Name() string { return "csv:" + s.Path }

func (s *CSVSource) Load(ctx context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: err}
	}
	defer f.Close()
	return ParseCSV(f, s.Name())
}

// ParseCSV reads a header CSV into a validated record set.
func ParseCSV(r io.Reader, source string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: empty file", ErrMissingColumn)}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, &LoadError{Source: source, Field: c, Err: ErrMissingColumn}
		}
	}

	var records []Record
	row := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: source, Row: row + 1, Err: err}
		}
		row++

		rec := Record{
			Name:     strings.TrimSpace(fields[cols["name"]]),
			Category: strings.TrimSpace(fields[cols["category"]]),
		}
		if rec.ComplexityFit, err = parseScore(fields, cols, "complexity_fit"); err != nil {
			return nil, &LoadError{Source: source, Row: row, Field: "complexity_fit", Err: err}
		}
		if rec.DataFit, err = parseScore(fields, cols, "data_fit"); err != nil {
			return nil, &LoadError{Source: source, Row: row, Field: "data_fit", Err: err}
		}

		rec.PlotComplexity = rec.ComplexityFit
		rec.PlotData = rec.DataFit
		if v, ok, err := parseOptional(fields, cols, "plot_complexity"); err != nil {
			return nil, &LoadError{Source: source, Row: row, Field: "plot_complexity", Err: err}
		} else if ok {
			rec.PlotComplexity = v
		}
		if v, ok, err := parseOptional(fields, cols, "plot_data"); err != nil {
			return nil, &LoadError{Source: source, Row: row, Field: "plot_data", Err: err}
		} else if ok {
			rec.PlotData = v
		}
		if v, ok, err := parseOptional(fields, cols, "frequency"); err != nil {
			return nil, &LoadError{Source: source, Row: row, Field: "frequency", Err: err}
		} else if ok {
			rec.Frequency = v
		}

		records = append(records, rec)
	}

	if err := Validate(source, records); err != nil {
		return nil, err
	}
	return records, nil
}

func parseScore(fields []string, cols map[string]int, name string) (float64, error) {
	idx := cols[name]
	if idx >= len(fields) {
		return 0, fmt.Errorf("%w: row too short", ErrBadValue)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, fields[idx])
	}
	return v, nil
}

func parseOptional(fields []string, cols map[string]int, name string) (float64, bool, error) {
	idx, ok := cols[name]
	if !ok || idx >= len(fields) {
		return 0, false, nil
	}
	raw := strings.TrimSpace(fields[idx])
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadValue, raw)
	}
	return v, true, nil
}
