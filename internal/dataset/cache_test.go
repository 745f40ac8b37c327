package dataset

import (
	"context"
	"errors"
	"testing"
)

type countingSource struct {
	records []Record
	err     error
	loads   int
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Load(ctx context.Context) ([]Record, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func TestCacheLoadsOnce(t *testing.T) {
	src := &countingSource{records: []Record{
		{Name: "KNN", Category: "Instance-Based", ComplexityFit: 0.4, DataFit: 0.13},
	}}
	c := NewCache(src)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		records, err := c.Records(ctx)
		if err != nil {
			t.Fatalf("Records failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
	}
	if src.loads != 1 {
		t.Errorf("expected exactly 1 load, got %d", src.loads)
	}
}

func TestCacheSnapshotStable(t *testing.T) {
	src := &countingSource{records: []Record{{Name: "SVM", Category: "Kernel"}}}
	c := NewCache(src)
	ctx := context.Background()

	s1, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	s2, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if s1.ID != s2.ID {
		t.Errorf("snapshot ID changed between reads: %s vs %s", s1.ID, s2.ID)
	}
	if s1.Rows != 1 {
		t.Errorf("expected 1 row, got %d", s1.Rows)
	}
	if s1.Source != "counting" {
		t.Errorf("expected source 'counting', got %q", s1.Source)
	}
	if s1.LoadedAt.IsZero() {
		t.Error("expected non-zero LoadedAt")
	}
}

func TestCacheRetriesAfterFailure(t *testing.T) {
	src := &countingSource{err: errors.New("boom")}
	c := NewCache(src)
	ctx := context.Background()

	if _, err := c.Records(ctx); err == nil {
		t.Fatal("expected error")
	}

	// A failed load is not cached.
	src.err = nil
	src.records = []Record{{Name: "ANN", Category: "Deep Learning"}}
	records, err := c.Records(ctx)
	if err != nil {
		t.Fatalf("Records failed after recovery: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if src.loads != 2 {
		t.Errorf("expected 2 loads, got %d", src.loads)
	}
}
