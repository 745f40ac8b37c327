package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/constructml/quadrant/internal/quadrant"
)

func TestExportImage(t *testing.T) {
	a := quadrant.Analyze(testRecords(), quadrant.DefaultThresholds())
	opts := Options{Title: "Suitability"}

	for _, ext := range []string{"png", "svg"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chart."+ext)
			if err := ExportImage(a, opts, path); err != nil {
				t.Fatalf("ExportImage failed: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("output missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("empty output file")
			}
		})
	}
}

func TestExportImageEmpty(t *testing.T) {
	a := quadrant.Analyze(nil, quadrant.DefaultThresholds())
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := ExportImage(a, Options{Title: "Empty"}, path); err != nil {
		t.Fatalf("ExportImage failed on empty analysis: %v", err)
	}
}
