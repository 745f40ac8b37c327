// seed_scores.go — standalone script to seed the algorithm_scores table
// from a CSV, for deployments using the postgres dataset source.
//
// Usage:
//
//	go run scripts/seed_scores.go -csv internal/dataset/data/algorithms.csv -db postgres://localhost/quadrant
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/constructml/quadrant/internal/dataset"
)

const schema = `
CREATE TABLE IF NOT EXISTS algorithm_scores (
	name            TEXT PRIMARY KEY,
	category        TEXT NOT NULL,
	complexity_fit  DOUBLE PRECISION NOT NULL,
	data_fit        DOUBLE PRECISION NOT NULL,
	plot_complexity DOUBLE PRECISION,
	plot_data       DOUBLE PRECISION,
	frequency       DOUBLE PRECISION
)`

func main() {
	csvPath := flag.String("csv", "internal/dataset/data/algorithms.csv", "path to score CSV")
	dbURL := flag.String("db", os.Getenv("QUADRANT_DATABASE_URL"), "postgres connection URL")
	truncate := flag.Bool("truncate", false, "clear the table before seeding")
	flag.Parse()

	if *dbURL == "" {
		log.Fatal("no database URL: pass -db or set QUADRANT_DATABASE_URL")
	}

	ctx := context.Background()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	records, err := dataset.ParseCSV(f, *csvPath)
	f.Close()
	if err != nil {
		log.Fatalf("parse csv: %v", err)
	}

	conn, err := pgx.Connect(ctx, *dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		log.Fatalf("create table: %v", err)
	}
	if *truncate {
		if _, err := conn.Exec(ctx, "TRUNCATE algorithm_scores"); err != nil {
			log.Fatalf("truncate: %v", err)
		}
	}

	for _, r := range records {
		_, err := conn.Exec(ctx, `
			INSERT INTO algorithm_scores
				(name, category, complexity_fit, data_fit, plot_complexity, plot_data, frequency)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO UPDATE SET
				category = EXCLUDED.category,
				complexity_fit = EXCLUDED.complexity_fit,
				data_fit = EXCLUDED.data_fit,
				plot_complexity = EXCLUDED.plot_complexity,
				plot_data = EXCLUDED.plot_data,
				frequency = EXCLUDED.frequency`,
			r.Name, r.Category, r.ComplexityFit, r.DataFit,
			r.PlotComplexity, r.PlotData, r.Frequency)
		if err != nil {
			log.Fatalf("insert %q: %v", r.Name, err)
		}
	}

	log.Printf("seeded %d records", len(records))
}
