// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/types"
)

// Defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultOutDir   = "out"
	DefaultPageSize = "A4"
	DefaultWorkers  = 4
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	OutDir      string            `json:"out_dir,omitempty"`                                                 // Directory for rendered PDFs
	PageSize    string            `json:"page_size,omitempty" validate:"omitempty,oneof=A3 A4 Letter Legal"` // Paper size
	MaxPages    int               `json:"max_pages,omitempty" validate:"gte=0"`                              // Reject documents longer than this (0 = no limit)
	Workers     int               `json:"workers,omitempty" validate:"gte=0,lte=64"`                         // Concurrent renders in batch mode
	DatabaseURL string            `json:"database_url,omitempty"`                                            // PostgreSQL connection URL
	Verbose     bool              `json:"verbose,omitempty"`                                                 // Print detailed layout summaries
	Intro       *types.IntroBlock `json:"intro,omitempty"`                                                   // Replaces the built-in intro block
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required values are not checked here since flags may still supply them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Intro != nil && c.Intro.Header == "" {
		return fmt.Errorf("config error: 'intro.header' must be set when 'intro' is present")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.PageSize == "" {
		result.PageSize = defaults.PageSize
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Intro == nil {
		result.Intro = defaults.Intro
	}

	// Bool: true wins
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}

// Defaults returns the built-in CLI configuration.
func Defaults() Config {
	return Config{
		OutDir:   DefaultOutDir,
		PageSize: DefaultPageSize,
		Workers:  DefaultWorkers,
	}
}

// LayoutConfig builds the rendering configuration this CLI configuration selects.
func (c *Config) LayoutConfig() (rendering.Config, error) {
	layout := rendering.DefaultConfig()
	if c.PageSize != "" {
		layout.PageSize = c.PageSize
	}
	if c.Intro != nil {
		layout = layout.WithIntro(*c.Intro)
	}
	if err := layout.Validate(); err != nil {
		return rendering.Config{}, err
	}
	return layout, nil
}
