package dataset

import (
	"context"
	"testing"
)

func TestEmbeddedDataset(t *testing.T) {
	src := NewEmbeddedSource()
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("embedded dataset failed to load: %v", err)
	}
	if len(records) != 11 {
		t.Fatalf("expected 11 records, got %d", len(records))
	}

	byName := make(map[string]Record, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}

	rf, ok := byName["Random Forest"]
	if !ok {
		t.Fatal("Random Forest missing from embedded dataset")
	}
	if rf.ComplexityFit != 0.88 || rf.DataFit != 0.67 {
		t.Errorf("unexpected Random Forest scores: C=%.2f D=%.2f", rf.ComplexityFit, rf.DataFit)
	}

	// A nudged record keeps its true scores separate from plot coords.
	ert, ok := byName["Extremely Randomized Trees"]
	if !ok {
		t.Fatal("Extremely Randomized Trees missing from embedded dataset")
	}
	if ert.ComplexityFit != 0.80 || ert.PlotComplexity != 0.76 {
		t.Errorf("expected nudged plot coordinate, got C=%.2f plot=%.2f",
			ert.ComplexityFit, ert.PlotComplexity)
	}

	cats := Categories(records)
	if len(cats) == 0 {
		t.Fatal("expected categories")
	}
}
