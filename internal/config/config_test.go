package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"QUADRANT_HOST", "QUADRANT_PORT", "QUADRANT_METRICS_PORT",
		"QUADRANT_DATASET_SOURCE", "QUADRANT_DATASET_PATH", "QUADRANT_DATABASE_URL",
		"QUADRANT_LOG_LEVEL", "QUADRANT_LOG_FORMAT",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8520 {
		t.Errorf("expected port 8520, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8521 {
		t.Errorf("expected metrics port 8521, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Dataset.Source != "embedded" {
		t.Errorf("expected embedded source, got %q", cfg.Dataset.Source)
	}
	if cfg.Chart.ComplexityThreshold != 0.80 {
		t.Errorf("expected complexity threshold 0.80, got %f", cfg.Chart.ComplexityThreshold)
	}
	if cfg.Chart.DataThreshold != 0.20 {
		t.Errorf("expected data threshold 0.20, got %f", cfg.Chart.DataThreshold)
	}
	if cfg.Chart.Title == "" {
		t.Error("expected non-empty default title")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got %q", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "quadrant.yaml")
	content := `
server:
  port: 9100
  metrics_port: 9101
dataset:
  source: csv
  path: /data/scores.csv
chart:
  complexity_threshold: 0.5
  data_threshold: 0.5
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Dataset.Source != "csv" || cfg.Dataset.Path != "/data/scores.csv" {
		t.Errorf("unexpected dataset config: %+v", cfg.Dataset)
	}
	if cfg.Chart.ComplexityThreshold != 0.5 || cfg.Chart.DataThreshold != 0.5 {
		t.Errorf("unexpected thresholds: %+v", cfg.Chart)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUADRANT_PORT", "9200")
	t.Setenv("QUADRANT_DATASET_SOURCE", "csv")
	t.Setenv("QUADRANT_DATASET_PATH", "/tmp/scores.csv")
	t.Setenv("QUADRANT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Dataset.Source != "csv" || cfg.Dataset.Path != "/tmp/scores.csv" {
		t.Errorf("unexpected dataset config: %+v", cfg.Dataset)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"embedded ok", func(c *Config) {}, false},
		{"csv without path", func(c *Config) { c.Dataset.Source = "csv" }, true},
		{"postgres without url", func(c *Config) { c.Dataset.Source = "postgres" }, true},
		{"unknown source", func(c *Config) { c.Dataset.Source = "redis" }, true},
		{"threshold too high", func(c *Config) { c.Chart.DataThreshold = 1.5 }, true},
		{"threshold negative", func(c *Config) { c.Chart.ComplexityThreshold = -0.1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
