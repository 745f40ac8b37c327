package dataset

import (
	"bytes"
	"context"
	_ "embed"
)

// The curated 11-algorithm dataset from the underlying meta-analysis is
// compiled in so the dashboard works with no external files.
//
//go:embed data/algorithms.csv
var embeddedCSV []byte

// EmbeddedSource serves the built-in dataset.
type EmbeddedSource struct{}

func NewEmbeddedSource() *EmbeddedSource { return &EmbeddedSource{} }

func (s *EmbeddedSource) Name() string { return "embedded" }

func (s *EmbeddedSource) Load(ctx context.Context) ([]Record, error) {
	return ParseCSV(bytes.NewReader(embeddedCSV), s.Name())
}
