package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/homestat-cli/internal/config"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

var (
	// Global flags (wired to config)
	cfgFile string
	debug   bool
	// Synthesizer flags (override config if set)
	flagSeed    int64
	flagSamples int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "homestat",
	Short: "HomeStat CLI: synthesize, clean, and summarize a housing dataset",
	Long:  `HomeStat generates a reproducible synthetic housing dataset, cleans it (imputation and outlier removal), and produces descriptive statistics, charts, and export artifacts.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.homestat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagSamples, "samples", 0, "number of rows to synthesize (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if f.Changed("samples") && flagSamples > 0 {
		cfg.Samples = flagSamples
	}
}

// synthParams builds dataset params from the effective configuration.
func synthParams() (dataset.Params, error) {
	p := dataset.DefaultParams()
	if cfg == nil {
		return p, nil
	}
	p.Seed = cfg.Seed
	if cfg.Samples > 0 {
		p.Samples = cfg.Samples
	}
	if cfg.MissingPrice >= 0 {
		p.MissingPrice = cfg.MissingPrice
	}
	if cfg.MissingSize >= 0 {
		p.MissingSize = cfg.MissingSize
	}
	if cfg.StartDate != "" {
		start, err := time.Parse("2006-01-02", cfg.StartDate)
		if err != nil {
			return p, fmt.Errorf("invalid start_date %q: %w", cfg.StartDate, err)
		}
		p.StartDate = start
	}
	return p, nil
}
