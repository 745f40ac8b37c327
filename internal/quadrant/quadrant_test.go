package quadrant

import (
	"testing"

	"github.com/constructml/quadrant/internal/dataset"
)

func TestClassify(t *testing.T) {
	th := DefaultThresholds() // 0.80 / 0.20

	tests := []struct {
		name       string
		complexity float64
		data       float64
		want       Quadrant
	}{
		{"high both", 0.88, 0.67, BestOfBoth},
		{"low complexity high data", 0.19, 0.20, SimpleRobust},
		{"low both", 0.40, 0.13, LimitedApplicability},
		{"high complexity low data", 0.82, 0.09, ComplexFragile},
		{"on both dividers counts high", 0.80, 0.20, BestOfBoth},
		{"just under divider", 0.7999, 0.1999, LimitedApplicability},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.complexity, tt.data, th)
			if got != tt.want {
				t.Errorf("Classify(%.4f, %.4f) = %v, want %v", tt.complexity, tt.data, got, tt.want)
			}
		})
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Errorf("default thresholds invalid: %v", err)
	}
	if err := (Thresholds{Complexity: 1.2, Data: 0.2}).Validate(); err == nil {
		t.Error("expected error for out-of-range threshold")
	}
}

func TestAnalyzeSharesAndLabels(t *testing.T) {
	records := []dataset.Record{
		{Name: "Boosting/Gradient", Category: "Ensemble", ComplexityFit: 0.84, DataFit: 0.74, Frequency: 30},
		{Name: "KNN", Category: "Instance-Based", ComplexityFit: 0.40, DataFit: 0.13, Frequency: 10},
	}
	a := Analyze(records, DefaultThresholds())

	if a.TotalFrequency != 40 {
		t.Fatalf("expected total frequency 40, got %f", a.TotalFrequency)
	}
	if len(a.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(a.Placements))
	}

	boost := a.Placements[0]
	if boost.Share != 75.0 {
		t.Errorf("expected share 75.0, got %f", boost.Share)
	}
	if boost.ChartLabel != "Boosting/Gradient, 75.0%" {
		t.Errorf("unexpected chart label: %q", boost.ChartLabel)
	}
	if boost.LegendLabel != "Boosting/Gradient, 75.0% (C=0.84, D=0.74)" {
		t.Errorf("unexpected legend label: %q", boost.LegendLabel)
	}
	if boost.Quadrant != BestOfBoth {
		t.Errorf("expected BestOfBoth, got %v", boost.Quadrant)
	}
}

func TestAnalyzeWithoutFrequencies(t *testing.T) {
	records := []dataset.Record{
		{Name: "SVM", Category: "Kernel", ComplexityFit: 0.96, DataFit: 0.20},
	}
	a := Analyze(records, DefaultThresholds())
	p := a.Placements[0]
	if p.Share != 0 {
		t.Errorf("expected zero share, got %f", p.Share)
	}
	if p.ChartLabel != "SVM" {
		t.Errorf("expected bare name label, got %q", p.ChartLabel)
	}
	if p.LegendLabel != "SVM (C=0.96, D=0.20)" {
		t.Errorf("unexpected legend label: %q", p.LegendLabel)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil, DefaultThresholds())
	if len(a.Placements) != 0 {
		t.Errorf("expected no placements, got %d", len(a.Placements))
	}
	if a.TotalFrequency != 0 {
		t.Errorf("expected zero total frequency, got %f", a.TotalFrequency)
	}
}

// Three-algorithm dataset with midpoint dividers: each record lands in a
// distinct, expected region.
func TestAnalyzeThreeAlgorithms(t *testing.T) {
	th := Thresholds{Complexity: 0.5, Data: 0.5}
	records := []dataset.Record{
		{Name: "Random Forest", Category: "Ensemble", ComplexityFit: 0.85, DataFit: 0.90},
		{Name: "Linear Regression", Category: "Linear", ComplexityFit: 0.20, DataFit: 0.30},
		{Name: "Deep Neural Net", Category: "Deep Learning", ComplexityFit: 0.95, DataFit: 0.20},
	}
	a := Analyze(records, th)

	want := map[string]Quadrant{
		"Random Forest":     BestOfBoth,
		"Linear Regression": LimitedApplicability,
		"Deep Neural Net":   ComplexFragile,
	}
	for _, p := range a.Placements {
		if p.Quadrant != want[p.Record.Name] {
			t.Errorf("%s: got %v, want %v", p.Record.Name, p.Quadrant, want[p.Record.Name])
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []dataset.Record{
		{Name: "Random Forest", Category: "Ensemble", ComplexityFit: 0.88, DataFit: 0.67, Frequency: 10},
		{Name: "Boosting/Gradient", Category: "Ensemble", ComplexityFit: 0.84, DataFit: 0.74, Frequency: 30},
		{Name: "ANN", Category: "Deep Learning", ComplexityFit: 0.82, DataFit: 0.09, Frequency: 10},
	}
	summaries := Analyze(records, DefaultThresholds()).Summarize()

	if len(summaries) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(summaries))
	}
	best := summaries[0]
	if best.Quadrant != BestOfBoth || best.Count != 2 {
		t.Errorf("unexpected best-of-both summary: %+v", best)
	}
	if best.Share != 80.0 {
		t.Errorf("expected best-of-both share 80.0, got %f", best.Share)
	}
	empty := summaries[1]
	if empty.Quadrant != SimpleRobust || empty.Count != 0 {
		t.Errorf("unexpected simple-robust summary: %+v", empty)
	}
}

func TestQuadrantLabels(t *testing.T) {
	for _, q := range Quadrants {
		if q.Label() == "Unknown" || q.String() == "unknown" {
			t.Errorf("quadrant %d has no label", q)
		}
	}
}
