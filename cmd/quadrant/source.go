package main

import (
	"context"
	"fmt"

	"github.com/constructml/quadrant/internal/config"
	"github.com/constructml/quadrant/internal/dataset"
)

// buildSource wires the configured dataset source. The returned closer is
// a no-op for file and embedded sources.
func buildSource(ctx context.Context, cfg *config.Config) (dataset.Source, func(), error) {
	switch cfg.Dataset.Source {
	case "embedded":
		return dataset.NewEmbeddedSource(), func() {}, nil
	case "csv":
		return dataset.NewCSVSource(cfg.Dataset.Path), func() {}, nil
	case "postgres":
		src, err := dataset.NewPostgresSource(ctx, cfg.Dataset.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
