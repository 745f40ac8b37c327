package chart

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/constructml/quadrant/internal/quadrant"
)

// ExportImage renders the analysis to a static chart file. The format is
// picked from the extension (.png, .svg, .pdf), handled by gonum/plot.
func ExportImage(a quadrant.Analysis, opts Options, path string) error {
	spec, err := BuildSpec(a, opts)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XTitle
	p.Y.Label.Text = spec.YTitle
	p.X.Min, p.X.Max = spec.XRange[0], spec.XRange[1]
	p.Y.Min, p.Y.Max = spec.YRange[0], spec.YRange[1]
	p.Add(plotter.NewGrid())

	if err := addDividers(p, spec); err != nil {
		return err
	}

	// One scatter per category so the legend groups sensibly.
	byCategory := make(map[string][]Point)
	for _, pt := range spec.Points {
		byCategory[pt.Category] = append(byCategory[pt.Category], pt)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		points := byCategory[cat]
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("scatter for %s: %w", cat, err)
		}
		pts := points
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			c, perr := parseHex(pts[i].Color)
			if perr != nil {
				c = color.RGBA{R: 120, G: 120, B: 120, A: 255}
			}
			// JSON radii are pixel-ish; scale down for print.
			return draw.GlyphStyle{
				Color:  c,
				Radius: vg.Points(3 + pts[i].Radius/4),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)
		p.Legend.Add(cat, sc)

		if err := addLabels(p, points); err != nil {
			return err
		}
	}

	p.Legend.Top = true

	if err := p.Save(9*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

func addDividers(p *plot.Plot, spec *Spec) error {
	grey := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	dashes := []vg.Length{vg.Points(4), vg.Points(3)}

	vert, err := plotter.NewLine(plotter.XYs{
		{X: spec.DividerX, Y: spec.YRange[0]},
		{X: spec.DividerX, Y: spec.YRange[1]},
	})
	if err != nil {
		return err
	}
	vert.Color = grey
	vert.Dashes = dashes
	p.Add(vert)

	horiz, err := plotter.NewLine(plotter.XYs{
		{X: spec.XRange[0], Y: spec.DividerY},
		{X: spec.XRange[1], Y: spec.DividerY},
	})
	if err != nil {
		return err
	}
	horiz.Color = grey
	horiz.Dashes = dashes
	p.Add(horiz)
	return nil
}

func addLabels(p *plot.Plot, points []Point) error {
	xys := make(plotter.XYs, len(points))
	texts := make([]string, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		texts[i] = pt.Label
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	p.Add(labels)
	return nil
}
