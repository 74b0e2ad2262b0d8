package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for inconsistent settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the spam checker configuration
type Config struct {
	// Class names
	Labels LabelsConfig `yaml:"labels"`

	// Training data source
	Dataset DatasetConfig `yaml:"dataset"`

	// Training behaviour
	Training TrainingConfig `yaml:"training"`

	// Console report settings
	Report ReportConfig `yaml:"report"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// LabelsConfig names the success and fail classes
type LabelsConfig struct {
	Success string `yaml:"success"`
	Fail    string `yaml:"fail"`
}

// DatasetConfig describes the CSV training data
type DatasetConfig struct {
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"` // utf-8, latin1, windows-1252

	HasHeader   bool `yaml:"has_header"`
	LabelColumn int  `yaml:"label_column"`
	TextColumn  int  `yaml:"text_column"`

	// Label values in the label column
	SuccessValue string `yaml:"success_value"`
	FailValue    string `yaml:"fail_value"`
}

// TrainingConfig contains training settings
type TrainingConfig struct {
	// Drop the empty token produced by tokenizing leading/trailing punctuation
	PruneEmptyToken bool `yaml:"prune_empty_token"`

	// Recompute model totals after training
	UpdateTotals bool `yaml:"update_totals"`

	// Snowball stemming
	Stemming     bool   `yaml:"stemming"`
	StemLanguage string `yaml:"stem_language"`
}

// ReportConfig contains console output settings
type ReportConfig struct {
	TopItems       int `yaml:"top_items"`
	RatioPrecision int `yaml:"ratio_precision"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Labels: LabelsConfig{
			Success: "spam",
			Fail:    "ham",
		},
		Dataset: DatasetConfig{
			Path:         "spam.csv",
			Encoding:     "latin1",
			HasHeader:    false,
			LabelColumn:  0,
			TextColumn:   1,
			SuccessValue: "spam",
			FailValue:    "ham",
		},
		Training: TrainingConfig{
			PruneEmptyToken: true,
			UpdateTotals:    false,
			Stemming:        false,
			StemLanguage:    "english",
		},
		Report: ReportConfig{
			TopItems:       15,
			RatioPrecision: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from file
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If no config file specified, return defaults
	if configPath == "" {
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Labels.Success == "" || c.Labels.Fail == "" {
		return fmt.Errorf("%w: labels.success and labels.fail must be set", ErrInvalidConfig)
	}
	if c.Labels.Success == c.Labels.Fail {
		return fmt.Errorf("%w: labels.success and labels.fail must differ", ErrInvalidConfig)
	}

	// Validate dataset settings
	if c.Dataset.LabelColumn < 0 || c.Dataset.TextColumn < 0 {
		return fmt.Errorf("%w: dataset columns must be >= 0", ErrInvalidConfig)
	}
	if c.Dataset.LabelColumn == c.Dataset.TextColumn {
		return fmt.Errorf("%w: dataset label_column and text_column must differ", ErrInvalidConfig)
	}
	if c.Dataset.SuccessValue == "" || c.Dataset.FailValue == "" {
		return fmt.Errorf("%w: dataset success_value and fail_value must be set", ErrInvalidConfig)
	}
	if c.Dataset.SuccessValue == c.Dataset.FailValue {
		return fmt.Errorf("%w: dataset success_value and fail_value must differ", ErrInvalidConfig)
	}
	switch c.Dataset.Encoding {
	case "", "utf-8", "utf8", "latin1", "iso-8859-1", "windows-1252":
	default:
		return fmt.Errorf("%w: unsupported dataset encoding: %s", ErrInvalidConfig, c.Dataset.Encoding)
	}

	if c.Training.Stemming && c.Training.StemLanguage == "" {
		return fmt.Errorf("%w: training.stem_language is required when stemming is enabled", ErrInvalidConfig)
	}

	if c.Report.TopItems < 1 {
		return fmt.Errorf("%w: report.top_items must be >= 1", ErrInvalidConfig)
	}
	if c.Report.RatioPrecision < 0 || c.Report.RatioPrecision > 17 {
		return fmt.Errorf("%w: report.ratio_precision must be between 0 and 17", ErrInvalidConfig)
	}

	// Validate logging level
	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: invalid logging level: %s", ErrInvalidConfig, c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging format must be 'text' or 'json'", ErrInvalidConfig)
	}

	return nil
}
