package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constructml/quadrant/internal/chart"
	"github.com/constructml/quadrant/internal/quadrant"
)

func newExportCommand(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the quadrant chart to a static image",
		Long: `Render the quadrant chart to a static image file.

The output format follows the file extension: .png, .svg or .pdf.`,
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
			opts := chart.Options{Title: cfg.Chart.Title, Subtitle: cfg.Chart.Subtitle}
			if err := chart.ExportImage(a, opts, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d points)\n", out, len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "quadrant.png", "output file (.png, .svg, .pdf)")

	return cmd
}
