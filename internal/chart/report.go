package chart

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/constructml/quadrant/internal/quadrant"
)

// WriteReport renders a one-page PDF summary: each quadrant, its member
// algorithms and their scores.
func WriteReport(a quadrant.Analysis, opts Options, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(opts.Title), "", 1, "L", false, 0, "")
	if opts.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 5, tr(opts.Subtitle), "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, fmt.Sprintf("Dividers: complexity fit %.2f, data fit %.2f. %d algorithms.",
		a.Thresholds.Complexity, a.Thresholds.Data, len(a.Placements)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	grouped := a.ByQuadrant()
	for _, q := range quadrant.Quadrants {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(240, 244, 248)
		pdf.CellFormat(0, 8, tr(q.Label()), "", 1, "L", true, 0, "")

		placements := grouped[q]
		if len(placements) == 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(120, 120, 120)
			pdf.CellFormat(0, 6, "(no algorithms)", "", 1, "L", false, 0, "")
			pdf.Ln(2)
			continue
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(70, 6, "Algorithm", "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, "Category", "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, "Complexity", "B", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, "Data", "B", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, "Share", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, p := range placements {
			r := p.Record
			pdf.CellFormat(70, 6, tr(r.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, tr(r.Category), "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", r.ComplexityFit), "", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", r.DataFit), "", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, fmt.Sprintf("%.1f%%", p.Share), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
