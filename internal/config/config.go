// Package config provides configuration management for the pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingSourceURL   = errors.New("source.url is required")
	ErrInvalidTimeout     = errors.New("source.timeout_sec must be at least 1")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrMissingHistoryPath = errors.New("history.path is required when history is enabled")
	ErrInvalidPreviewRows = errors.New("features.preview_rows must be at least 1")
)

// Config represents the complete pipeline configuration.
type Config struct {
	ETL      ETLConfig      `yaml:"etl"`
	Features FeaturesConfig `yaml:"features"`
}

// ETLConfig contains the extract, transform, and load settings.
type ETLConfig struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	History HistoryConfig `yaml:"history"`
}

// SourceConfig identifies the API endpoint user records are fetched from.
type SourceConfig struct {
	URL        string `yaml:"url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// GetTimeout returns the request timeout duration.
func (s *SourceConfig) GetTimeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// OutputConfig defines where the cleaned CSV is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior. File, when set, receives a copy
// of every log record in addition to stderr.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// HistoryConfig defines the run-history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	EnablePreview bool `yaml:"enable_preview"`
	PreviewRows   int  `yaml:"preview_rows"`
}

// DefaultConfig returns the built-in configuration used when no config file
// is provided.
func DefaultConfig() *Config {
	return &Config{
		ETL: ETLConfig{
			Source: SourceConfig{
				URL:        "https://jsonplaceholder.typicode.com/users",
				TimeoutSec: 5,
			},
			Output: OutputConfig{
				Path: "output/users_cleaned.csv",
			},
			Logging: LoggingConfig{
				Level: "info",
				File:  "etl_process.log",
			},
			History: HistoryConfig{
				Enabled: true,
				Path:    "etl_runs.db",
			},
		},
		Features: FeaturesConfig{
			EnablePreview: false,
			PreviewRows:   5,
		},
	}
}

// LoadConfig loads configuration from a YAML file, layered over the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ETL.Source.URL == "" {
		return ErrMissingSourceURL
	}

	if c.ETL.Source.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.ETL.Output.Path == "" {
		return ErrMissingOutputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.ETL.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.ETL.History.Enabled && c.ETL.History.Path == "" {
		return ErrMissingHistoryPath
	}

	if c.Features.PreviewRows < 1 {
		return ErrInvalidPreviewRows
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %s, Output: %s, Timeout: %ds}",
		c.ETL.Source.URL,
		c.ETL.Output.Path,
		c.ETL.Source.TimeoutSec,
	)
}
