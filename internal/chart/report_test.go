package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/constructml/quadrant/internal/quadrant"
)

func TestWriteReport(t *testing.T) {
	a := quadrant.Analyze(testRecords(), quadrant.DefaultThresholds())

	var buf bytes.Buffer
	err := WriteReport(a, Options{Title: "Suitability Report", Subtitle: "test"}, &buf)
	if err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output is not a PDF")
	}
	if buf.Len() < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestWriteReportEmpty(t *testing.T) {
	a := quadrant.Analyze(nil, quadrant.DefaultThresholds())

	var buf bytes.Buffer
	if err := WriteReport(a, Options{Title: "Empty"}, &buf); err != nil {
		t.Fatalf("WriteReport failed on empty analysis: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Error("output is not a PDF")
	}
}
