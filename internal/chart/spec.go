// Package chart turns a quadrant analysis into renderable artifacts: a
// JSON spec for the web dashboard, a static image, and a PDF report.
package chart

import (
	"fmt"
	"math"
	"sort"

	"github.com/constructml/quadrant/internal/dataset"
	"github.com/constructml/quadrant/internal/quadrant"
)

// Axis padding beyond the score range, matching the source figure.
const rangePad = 0.1

// Bubble radius bounds in pixels.
const (
	minRadius = 6.0
	maxRadius = 40.0
)

// Quadrant background fills, in quadrant.Quadrants order.
var regionFills = map[quadrant.Quadrant]string{
	quadrant.BestOfBoth:           "#F0F4F8",
	quadrant.SimpleRobust:         "#F5F5F0",
	quadrant.LimitedApplicability: "#FAF0F0",
	quadrant.ComplexFragile:       "#FDFDF0",
}

// RenderError reports a record that reached the renderer with an unusable
// plot coordinate. Loader validation makes this unreachable for records
// that came through a Source; it guards direct callers.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render %q: %v", e.Name, e.Err) }
func (e *RenderError) Unwrap() error { return e.Err }

// Options control titles and divider placement.
type Options struct {
	Title    string
	Subtitle string
}

// Point is one bubble on the chart.
type Point struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	X        float64 `json:"x"` // plot complexity fit
	Y        float64 `json:"y"` // plot data fit
	Radius   float64 `json:"radius"`
	Color    string  `json:"color"`
	Label    string  `json:"label"`
	Quadrant string  `json:"quadrant"`
	Hover    Hover   `json:"hover"`
}

// Hover carries the true scores shown on inspection. Plot coordinates may
// be nudged for readability, so these are kept separately.
type Hover struct {
	ComplexityFit float64 `json:"complexity_fit"`
	DataFit       float64 `json:"data_fit"`
	Share         float64 `json:"share"`
}

// Region is a quadrant background rectangle.
type Region struct {
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Fill string  `json:"fill"`
}

// Annotation is a faint quadrant caption.
type Annotation struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Spec is the complete chart description consumed by the dashboard page.
// Building it is deterministic: identical input yields an identical spec.
type Spec struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	XTitle      string       `json:"x_title"`
	YTitle      string       `json:"y_title"`
	XRange      [2]float64   `json:"x_range"`
	YRange      [2]float64   `json:"y_range"`
	DividerX    float64      `json:"divider_x"`
	DividerY    float64      `json:"divider_y"`
	Regions     []Region     `json:"regions"`
	Annotations []Annotation `json:"annotations"`
	Points      []Point      `json:"points"`
	Categories  []string     `json:"categories"`
}

// BuildSpec maps an analysis onto the chart coordinate system. An empty
// analysis yields a valid spec with no points.
func BuildSpec(a quadrant.Analysis, opts Options) (*Spec, error) {
	lo, hi := dataset.ScoreMin-rangePad, dataset.ScoreMax+rangePad
	s := &Spec{
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
		XTitle:   "Complexity Fit (C)",
		YTitle:   "Data Fit (D)",
		XRange:   [2]float64{lo, hi},
		YRange:   [2]float64{lo, hi},
		DividerX: a.Thresholds.Complexity,
		DividerY: a.Thresholds.Data,
		Points:   []Point{},
	}

	dx, dy := s.DividerX, s.DividerY
	s.Regions = []Region{
		{X0: dx, Y0: dy, X1: hi, Y1: hi, Fill: regionFills[quadrant.BestOfBoth]},
		{X0: lo, Y0: dy, X1: dx, Y1: hi, Fill: regionFills[quadrant.SimpleRobust]},
		{X0: lo, Y0: lo, X1: dx, Y1: dy, Fill: regionFills[quadrant.LimitedApplicability]},
		{X0: dx, Y0: lo, X1: hi, Y1: dy, Fill: regionFills[quadrant.ComplexFragile]},
	}
	s.Annotations = []Annotation{
		{X: (dx + hi) / 2, Y: (dy + hi) / 2, Text: quadrant.BestOfBoth.Label()},
		{X: (lo + dx) / 2, Y: (dy + hi) / 2, Text: quadrant.SimpleRobust.Label()},
		{X: (lo + dx) / 2, Y: (lo + dy) / 2, Text: quadrant.LimitedApplicability.Label()},
		{X: (dx + hi) / 2, Y: (lo + dy) / 2, Text: quadrant.ComplexFragile.Label()},
	}

	maxShare := 0.0
	for _, p := range a.Placements {
		if p.Share > maxShare {
			maxShare = p.Share
		}
	}

	for _, p := range a.Placements {
		r := p.Record
		if math.IsNaN(r.PlotComplexity) || math.IsNaN(r.PlotData) {
			return nil, &RenderError{Name: r.Name, Err: fmt.Errorf("NaN plot coordinate")}
		}
		if r.PlotComplexity < lo || r.PlotComplexity > hi || r.PlotData < lo || r.PlotData > hi {
			return nil, &RenderError{Name: r.Name, Err: fmt.Errorf("plot coordinate outside axis range")}
		}
		s.Points = append(s.Points, Point{
			Name:     r.Name,
			Category: r.Category,
			X:        r.PlotComplexity,
			Y:        r.PlotData,
			Radius:   radiusFor(p.Share, maxShare),
			Color:    Color(r.Name, r.Category),
			Label:    p.ChartLabel,
			Quadrant: p.Quadrant.String(),
			Hover: Hover{
				ComplexityFit: r.ComplexityFit,
				DataFit:       r.DataFit,
				Share:         p.Share,
			},
		})
	}

	// Stable output regardless of source ordering.
	sort.Slice(s.Points, func(i, j int) bool { return s.Points[i].Name < s.Points[j].Name })

	seen := make(map[string]bool)
	for _, p := range s.Points {
		if !seen[p.Category] {
			seen[p.Category] = true
			s.Categories = append(s.Categories, p.Category)
		}
	}
	sort.Strings(s.Categories)

	return s, nil
}

// radiusFor sizes bubbles area-proportionally to frequency share, so a
// study cited twice as often draws roughly twice the ink.
func radiusFor(share, maxShare float64) float64 {
	if maxShare <= 0 || share <= 0 {
		return minRadius
	}
	r := maxRadius * math.Sqrt(share/maxShare)
	if r < minRadius {
		return minRadius
	}
	return r
}

// Filter returns the subset of records in the given categories, preserving
// order. An empty filter keeps everything.
func Filter(records []dataset.Record, categories []string) []dataset.Record {
	if len(categories) == 0 {
		return records
	}
	want := make(map[string]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if want[r.Category] {
			out = append(out, r)
		}
	}
	return out
}
