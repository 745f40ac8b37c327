package chart

import (
	"fmt"
	"hash/fnv"
	"image/color"
)

// Muted pastel palette from the source study's figure, keyed by algorithm
// name so colors stay stable across renders.
var algorithmColors = map[string]string{
	"ANN":                        "#DBA9C7",
	"Bayesian Networks":          "#88C9D4",
	"Boosting/Gradient":          "#8FBC8F",
	"Decision Tree":              "#B39EB5",
	"Ensemble":                   "#F4C2C2",
	"Extremely Randomized Trees": "#D9D98C",
	"KNN":                        "#A9A9A9",
	"Naïve-Bayesian":             "#BC8F8F",
	"Random Forest":              "#E9967A",
	"Regression":                 "#8CBED6",
	"SVM":                        "#708090",
}

// Fallback cycle for algorithms the palette does not know. Picked by
// category hash so the same category always gets the same color.
var fallbackColors = []string{
	"#A3C4BC", "#C7B8E0", "#E0C7A8", "#A8C7E0", "#E0A8B8", "#B8E0A8",
}

// Color returns the hex color for an algorithm, falling back to a
// deterministic per-category color.
func Color(name, category string) string {
	if c, ok := algorithmColors[name]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(category))
	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}

// parseHex converts "#RRGGBB" to an RGBA color for image rendering.
func parseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
