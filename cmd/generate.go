package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
	"github.com/KaramelBytes/homestat-cli/internal/run"
	"github.com/KaramelBytes/homestat-cli/internal/utils"
)

var (
	genOutputPath string
	genCleaned    bool
	genNoManifest bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize the housing dataset and write it as CSV",
	Example: `  homestat generate
  homestat generate --seed 7 --samples 500 -o housing_data.csv
  homestat generate --cleaned`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := synthParams()
		if err != nil {
			return err
		}
		t, err := dataset.Synthesize(p)
		if err != nil {
			return fmt.Errorf("synthesize: %w", err)
		}

		out := genOutputPath
		if out == "" {
			out = filepath.Join(outputDir(), csvName())
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := utils.EnsureDir(dir); err != nil {
				return err
			}
		}
		// The default dump is the raw table, written before cleaning.
		if err := dataset.WriteCSV(t, out); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %d rows to %s (seed %d)\n", t.Len(), out, p.Seed)

		m := run.New(p.Seed, p.Samples)
		m.RowsRaw = t.Len()
		m.AddArtifact(out, "csv")

		if genCleaned || (cfg != nil && cfg.WriteCleanedCSV) {
			cleaned, rep := clean.Clean(t)
			cleanedPath := cleanedCSVPath(out)
			if err := dataset.WriteCSV(cleaned, cleanedPath); err != nil {
				return err
			}
			m.RowsClean = cleaned.Len()
			m.AddArtifact(cleanedPath, "csv")
			fmt.Printf("✓ Wrote %d cleaned rows to %s (%d imputed price, %d imputed size, %d dropped)\n",
				cleaned.Len(), cleanedPath, rep.ImputedPrice, rep.ImputedSize, rep.Dropped)
		}

		if !genNoManifest && cfg != nil {
			path, err := m.Save(cfg.RunsDir)
			if err != nil {
				return err
			}
			if debug {
				fmt.Printf("✓ Recorded run manifest %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOutputPath, "output", "o", "", "CSV output path (default <output_dir>/<csv_name>)")
	generateCmd.Flags().BoolVar(&genCleaned, "cleaned", false, "also write the cleaned table next to the raw dump")
	generateCmd.Flags().BoolVar(&genNoManifest, "no-manifest", false, "skip writing a run manifest")
}

func outputDir() string {
	if cfg != nil && cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return "."
}

func csvName() string {
	if cfg != nil && cfg.CSVName != "" {
		return cfg.CSVName
	}
	return "housing_data.csv"
}

func cleanedCSVPath(raw string) string {
	ext := filepath.Ext(raw)
	return strings.TrimSuffix(raw, ext) + ".cleaned" + ext
}
