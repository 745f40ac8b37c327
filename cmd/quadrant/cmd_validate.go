package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constructml/quadrant/internal/quadrant"
)

func newValidateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configured dataset and report any errors",
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
				return fmt.Errorf("dataset invalid: %w", err)
			}

			th := quadrant.Thresholds{
				Complexity: cfg.Chart.ComplexityThreshold,
				Data:       cfg.Chart.DataThreshold,
			}
			a := quadrant.Analyze(records, th)

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records OK\n", src.Name(), len(records))
			for _, s := range a.Summarize() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-36s %2d algorithms, %.1f%% of studies\n",
					s.Label, s.Count, s.Share)
			}
			return nil
		},
	}
}
