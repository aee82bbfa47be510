//-------------------------------------------------------------------------
//
// SKUForge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, SKUForge Project
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for skuforge.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/skuforge/skuforge/internal/config"
	"github.com/skuforge/skuforge/internal/logging"
	"github.com/skuforge/skuforge/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "skuforge",
		Short: "Synthetic retail dataset generator",
		Long: `skuforge is a CLI tool that synthesizes a reproducible fictitious
retail dataset: a product catalog dimension table and a sparse daily
sales history fact table, written as CSV for downstream analytics or
testing.

Generation is driven by a single fixed seed, so two runs with the same
seed and parameters produce identical tables. It is a one-shot batch
job: no network, no database, no long-running behavior.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./skuforge.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(cfg.LogLevel)

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
