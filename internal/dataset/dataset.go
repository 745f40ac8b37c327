package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Score bounds shared by every record. Complexity fit and data fit are
// normalized to [0,1] upstream; anything outside is rejected at load time
// rather than clamped.
const (
	ScoreMin = 0.0
	ScoreMax = 1.0
)

// Record is one algorithm entry from the suitability study.
type Record struct {
	Name     string `json:"name"`
	Category string `json:"category"`

	// True scores, used for hover/legend display.
	ComplexityFit float64 `json:"complexity_fit"`
	DataFit       float64 `json:"data_fit"`

	// Display coordinates. Usually identical to the true scores; the
	// curated data nudges a few overlapping points apart so their labels
	// stay readable.
	PlotComplexity float64 `json:"plot_complexity"`
	PlotData       float64 `json:"plot_data"`

	// Study-citation weight. Drives bubble size; zero means unweighted.
	Frequency float64 `json:"frequency"`
}

// Source produces the full ordered record set. Implementations are
// read-only; a dataset never changes during the life of a process.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Record, error)
}

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrBadValue      = errors.New("malformed value")
	ErrScoreRange    = errors.New("score out of range")
	ErrEmptyName     = errors.New("empty algorithm name")
	ErrDuplicateName = errors.New("duplicate algorithm name")
)

// LoadError wraps a validation or parse failure with enough context to
// point at the offending row.
type LoadError struct {
	Source string
	Row    int // 1-based data row; 0 when not row-specific
	Field  string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Field != "":
		return fmt.Sprintf("load %s: row %d, field %q: %v", e.Source, e.Row, e.Field, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("load %s: row %d: %v", e.Source, e.Row, e.Err)
	case e.Field != "":
		return fmt.Sprintf("load %s: field %q: %v", e.Source, e.Field, e.Err)
	default:
		return fmt.Sprintf("load %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// Validate checks the whole record set against the score invariants.
// Sources call it after parsing so the rules stay identical regardless of
// where the data came from.
func Validate(source string, records []Record) error {
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		row := i + 1
		if r.Name == "" {
			return &LoadError{Source: source, Row: row, Field: "name", Err: ErrEmptyName}
		}
		if seen[r.Name] {
			return &LoadError{Source: source, Row: row, Field: "name", Err: ErrDuplicateName}
		}
		seen[r.Name] = true

		fields := []struct {
			name  string
			value float64
		}{
			{"complexity_fit", r.ComplexityFit},
			{"data_fit", r.DataFit},
			{"plot_complexity", r.PlotComplexity},
			{"plot_data", r.PlotData},
		}
		for _, f := range fields {
			if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
				return &LoadError{Source: source, Row: row, Field: f.name, Err: ErrBadValue}
			}
			if f.value < ScoreMin || f.value > ScoreMax {
				return &LoadError{Source: source, Row: row, Field: f.name,
					Err: fmt.Errorf("%w: %.4f not in [%.0f,%.0f]", ErrScoreRange, f.value, ScoreMin, ScoreMax)}
			}
		}
		if math.IsNaN(r.Frequency) || r.Frequency < 0 {
			return &LoadError{Source: source, Row: row, Field: "frequency", Err: ErrBadValue}
		}
	}
	return nil
}

// Categories returns the distinct categories in first-appearance order.
func Categories(records []Record) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}
