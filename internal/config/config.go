package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Chart   ChartConfig   `yaml:"chart"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
}

// DatasetConfig selects where the curated score table comes from.
// Source is one of "embedded", "csv", "postgres".
type DatasetConfig struct {
	Source      string `yaml:"source"`
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
}

type ChartConfig struct {
	Title               string  `yaml:"title"`
	Subtitle            string  `yaml:"subtitle"`
	ComplexityThreshold float64 `yaml:"complexity_threshold"`
	DataThreshold       float64 `yaml:"data_threshold"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8520,
			MetricsPort: 8521,
		},
		Dataset: DatasetConfig{
			Source: "embedded",
		},
		Chart: ChartConfig{
			Title:               "Beyond Accuracy: Algorithm Suitability in Construction",
			Subtitle:            "Complexity fit vs. data fit across 30 empirical studies",
			ComplexityThreshold: 0.80,
			DataThreshold:       0.20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case "embedded":
	case "csv":
		if c.Dataset.Path == "" {
			return fmt.Errorf("dataset source %q requires dataset.path", c.Dataset.Source)
		}
	case "postgres":
		if c.Dataset.DatabaseURL == "" {
			return fmt.Errorf("dataset source %q requires dataset.database_url", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("unknown dataset source %q", c.Dataset.Source)
	}
	for _, th := range []float64{c.Chart.ComplexityThreshold, c.Chart.DataThreshold} {
		if th < 0 || th > 1 {
			return fmt.Errorf("threshold %.4f not in [0,1]", th)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("QUADRANT_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("QUADRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("QUADRANT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("QUADRANT_DATASET_SOURCE"); v != "" {
		cfg.Dataset.Source = v
	}
	if v := os.Getenv("QUADRANT_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("QUADRANT_DATABASE_URL"); v != "" {
		cfg.Dataset.DatabaseURL = v
	}
	if v := os.Getenv("QUADRANT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("QUADRANT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
