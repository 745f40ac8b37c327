// Package quadrant maps algorithm suitability scores into the two-axis
// quadrant system used by the dashboard: complexity fit on one axis, data
// fit on the other, split by per-axis thresholds into four verdict regions.
package quadrant

import (
	"fmt"

	"github.com/constructml/quadrant/internal/dataset"
)

// Quadrant is a verdict region of the chart.
type Quadrant int

const (
	// BestOfBoth: high complexity fit, high data fit. The study's "gold
	// standard" region (Boosting, Random Forest).
	BestOfBoth Quadrant = iota + 1
	// SimpleRobust: low complexity fit, high data fit.
	SimpleRobust
	// LimitedApplicability: low on both axes.
	LimitedApplicability
	// ComplexFragile: powerful but brittle on messy construction data
	// (the "deployment gap", e.g. ANN).
	ComplexFragile
)

func (q Quadrant) String() string {
	switch q {
	case BestOfBoth:
		return "best_of_both"
	case SimpleRobust:
		return "simple_robust"
	case LimitedApplicability:
		return "limited_applicability"
	case ComplexFragile:
		return "complex_fragile"
	default:
		return "unknown"
	}
}

// Label is the display name shown on the chart.
func (q Quadrant) Label() string {
	switch q {
	case BestOfBoth:
		return "Quadrant 1: Best of Both"
	case SimpleRobust:
		return "Quadrant 2: Simple & Robust"
	case LimitedApplicability:
		return "Quadrant 3: Limited Applicability"
	case ComplexFragile:
		return "Quadrant 4: Complex & Fragile"
	default:
		return "Unknown"
	}
}

// Quadrants lists all regions in display order.
var Quadrants = []Quadrant{BestOfBoth, SimpleRobust, LimitedApplicability, ComplexFragile}

// Thresholds are the divider positions on each axis. The defaults are the
// per-axis medians of the underlying meta-analysis.
type Thresholds struct {
	Complexity float64 `json:"complexity"`
	Data       float64 `json:"data"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Complexity: 0.80, Data: 0.20}
}

func (t Thresholds) Validate() error {
	for _, v := range []float64{t.Complexity, t.Data} {
		if v < dataset.ScoreMin || v > dataset.ScoreMax {
			return fmt.Errorf("threshold %.4f not in [%.0f,%.0f]", v, dataset.ScoreMin, dataset.ScoreMax)
		}
	}
	return nil
}

// Classify places a (complexity fit, data fit) pair into its quadrant.
// Points exactly on a divider count as the high side.
func Classify(complexityFit, dataFit float64, th Thresholds) Quadrant {
	highC := complexityFit >= th.Complexity
	highD := dataFit >= th.Data
	switch {
	case highC && highD:
		return BestOfBoth
	case !highC && highD:
		return SimpleRobust
	case !highC && !highD:
		return LimitedApplicability
	default:
		return ComplexFragile
	}
}

// Placement is one record positioned in the quadrant system.
type Placement struct {
	Record   dataset.Record `json:"record"`
	Quadrant Quadrant       `json:"quadrant"`
	// Share is the record's frequency as a percentage of the dataset
	// total. Zero when the dataset carries no frequencies.
	Share float64 `json:"share"`
	// ChartLabel is the short on-bubble label, e.g. "Random Forest, 13.3%".
	ChartLabel string `json:"chart_label"`
	// LegendLabel adds the true scores, e.g.
	// "Random Forest, 13.3% (C=0.88, D=0.67)".
	LegendLabel string `json:"legend_label"`
}

// Analysis is the full deterministic mapping of a record set. Input order
// is preserved.
type Analysis struct {
	Thresholds     Thresholds  `json:"thresholds"`
	TotalFrequency float64     `json:"total_frequency"`
	Placements     []Placement `json:"placements"`
}

// Analyze maps every record into its quadrant and computes frequency
// shares and labels. Pure function of its inputs; an empty record set
// yields an empty analysis.
func Analyze(records []dataset.Record, th Thresholds) Analysis {
	a := Analysis{Thresholds: th, Placements: make([]Placement, 0, len(records))}
	for _, r := range records {
		a.TotalFrequency += r.Frequency
	}
	for _, r := range records {
		p := Placement{
			Record:   r,
			Quadrant: Classify(r.ComplexityFit, r.DataFit, th),
		}
		if a.TotalFrequency > 0 {
			p.Share = r.Frequency / a.TotalFrequency * 100
			p.ChartLabel = fmt.Sprintf("%s, %.1f%%", r.Name, p.Share)
			p.LegendLabel = fmt.Sprintf("%s, %.1f%% (C=%.2f, D=%.2f)",
				r.Name, p.Share, r.ComplexityFit, r.DataFit)
		} else {
			p.ChartLabel = r.Name
			p.LegendLabel = fmt.Sprintf("%s (C=%.2f, D=%.2f)", r.Name, r.ComplexityFit, r.DataFit)
		}
		a.Placements = append(a.Placements, p)
	}
	return a
}

// ByQuadrant groups placements by region, preserving input order within
// each group.
func (a Analysis) ByQuadrant() map[Quadrant][]Placement {
	out := make(map[Quadrant][]Placement)
	for _, p := range a.Placements {
		out[p.Quadrant] = append(out[p.Quadrant], p)
	}
	return out
}

// Summary is the per-quadrant rollup served by the API.
type Summary struct {
	Quadrant   Quadrant `json:"quadrant"`
	Label      string   `json:"label"`
	Count      int      `json:"count"`
	Share      float64  `json:"share"`
	Algorithms []string `json:"algorithms"`
}

// Summarize rolls the analysis up per quadrant in display order.
func (a Analysis) Summarize() []Summary {
	grouped := a.ByQuadrant()
	out := make([]Summary, 0, len(Quadrants))
	for _, q := range Quadrants {
		s := Summary{Quadrant: q, Label: q.Label()}
		for _, p := range grouped[q] {
			s.Count++
			s.Share += p.Share
			s.Algorithms = append(s.Algorithms, p.Record.Name)
		}
		out = append(out, s)
	}
	return out
}
