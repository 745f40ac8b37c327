package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/constructml/quadrant/internal/chart"
	"github.com/constructml/quadrant/internal/quadrant"
)

func newReportCommand(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF summary of the quadrant analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			src, closeSource, err := buildSource(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeSource()

			records, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			a := quadrant.Analyze(records, quadrant.Thresholds{
				Complexity: cfg.Chart.ComplexityThreshold,
				Data:       cfg.Chart.DataThreshold,
			})

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			opts := chart.Options{Title: cfg.Chart.Title, Subtitle: cfg.Chart.Subtitle}
			if err := chart.WriteReport(a, opts, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "quadrant-report.pdf", "output PDF file")

	return cmd
}
