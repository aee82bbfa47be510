//-------------------------------------------------------------------------
//
// SKUForge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, SKUForge Project
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for skuforge.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/skuforge/skuforge/internal/dataset"
)

// Config holds all configuration for skuforge.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Seed initializes the shared random source. Two runs with the same
	// seed and parameters produce identical tables.
	Seed uint64 `mapstructure:"seed"`

	// NumSKUs is the number of products in the catalog.
	NumSKUs int `mapstructure:"num_skus"`

	// DaysHistory is the number of days of sales history to simulate.
	// The date window covers days_history+1 calendar days ending today.
	DaysHistory int `mapstructure:"days_history"`

	// OutputPath is the destination directory for the CSV files,
	// created if absent.
	OutputPath string `mapstructure:"output_path"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Seed:        42,
			NumSKUs:     50,
			DaysHistory: 365,
			OutputPath:  filepath.Join("data", "raw"),
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./skuforge.yaml
// 3. ~/.config/skuforge/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("skuforge")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "skuforge"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate
// command. Validation runs before any generation work so an
// out-of-domain value never produces partial output.
func (c *Config) ValidateGenerate() error {
	if c.Generate.NumSKUs < 1 {
		return fmt.Errorf("%w: num_skus must be at least 1, got %d",
			dataset.ErrInvalidParameter, c.Generate.NumSKUs)
	}
	if c.Generate.DaysHistory < 0 {
		return fmt.Errorf("%w: days_history must be non-negative, got %d",
			dataset.ErrInvalidParameter, c.Generate.DaysHistory)
	}
	if c.Generate.OutputPath == "" {
		return fmt.Errorf("%w: output_path is required", dataset.ErrInvalidParameter)
	}
	return nil
}
