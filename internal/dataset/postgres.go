package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the curated score table from Postgres, for
// deployments that keep the dataset in a shared database rather than a
// file. Read-only; validation is identical to the CSV path.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresSource{pool: pool}, nil
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) Close() { s.pool.Close() }

func (s *PostgresSource) Load(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, category, complexity_fit, data_fit,
			plot_complexity, plot_data, frequency
		FROM algorithm_scores
		ORDER BY name`)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: err}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var plotC, plotD, freq sql.NullFloat64
		if err := rows.Scan(&r.Name, &r.Category, &r.ComplexityFit, &r.DataFit,
			&plotC, &plotD, &freq); err != nil {
			return nil, &LoadError{Source: s.Name(), Row: len(records) + 1, Err: err}
		}
		r.PlotComplexity = r.ComplexityFit
		r.PlotData = r.DataFit
		if plotC.Valid {
			r.PlotComplexity = plotC.Float64
		}
		if plotD.Valid {
			r.PlotData = plotD.Float64
		}
		if freq.Valid {
			r.Frequency = freq.Float64
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: s.Name(), Err: err}
	}

	if err := Validate(s.Name(), records); err != nil {
		return nil, err
	}
	return records, nil
}
