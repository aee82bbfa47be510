package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skuforge/skuforge/internal/datagen"
	"github.com/skuforge/skuforge/internal/dataset"
	"github.com/skuforge/skuforge/internal/logging"
	"github.com/skuforge/skuforge/internal/sink"
)

var (
	genSeed    uint64
	genNumSKUs int
	genDays    int
	genOutput  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the catalog and sales history tables",
	Long: `Generate the product catalog (dim_skus.csv) and the daily sales
history (fact_sales.csv) into the output directory, creating it if
needed. The whole run is deterministic for a fixed seed.

Example:
  skuforge generate
  skuforge generate --seed 7 --num-skus 200 --days 730 --output /tmp/retail`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0,
		"random seed for reproducible output")
	generateCmd.Flags().IntVar(&genNumSKUs, "num-skus", 0,
		"number of SKUs in the catalog")
	generateCmd.Flags().IntVar(&genDays, "days", 0,
		"days of sales history to simulate")
	generateCmd.Flags().StringVar(&genOutput, "output", "",
		"destination directory for the CSV files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags. The overrides are gated on
	// Changed so an explicit zero (or empty) value reaches validation
	// instead of silently falling back to the config value.
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = genSeed
	}
	if cmd.Flags().Changed("num-skus") {
		cfg.Generate.NumSKUs = genNumSKUs
	}
	if cmd.Flags().Changed("days") {
		cfg.Generate.DaysHistory = genDays
	}
	if cmd.Flags().Changed("output") {
		cfg.Generate.OutputPath = genOutput
	}

	// Validate configuration before any work; no partial output on
	// invalid parameters.
	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	out, err := sink.New(cfg.Generate.OutputPath)
	if err != nil {
		return err
	}

	// Seed the shared random source exactly once per run.
	s := datagen.New(cfg.Generate.Seed)
	logging.Info().
		Uint64("seed", cfg.Generate.Seed).
		Msg("Generator engine initialized")

	catalog, err := dataset.GenerateCatalog(s, cfg.Generate.NumSKUs)
	if err != nil {
		return err
	}
	catalogPath, err := out.WriteCatalog(catalog)
	if err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	logging.Info().
		Str("file", catalogPath).
		Int("records", len(catalog)).
		Msg("Master data generated")

	sales, err := dataset.GenerateDemandHistory(s, catalog, cfg.Generate.DaysHistory)
	if err != nil {
		return err
	}
	salesPath, err := out.WriteSales(sales)
	if err != nil {
		return fmt.Errorf("failed to write sales history: %w", err)
	}
	logging.Info().
		Str("file", salesPath).
		Int("records", len(sales)).
		Msg("Transaction history generated")

	return nil
}
