package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/analysis"
	"github.com/KaramelBytes/homestat-cli/internal/charts"
	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
	"github.com/KaramelBytes/homestat-cli/internal/export"
	"github.com/KaramelBytes/homestat-cli/internal/run"
	"github.com/KaramelBytes/homestat-cli/internal/utils"
)

var (
	runDir  string
	runXLSX bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the whole pipeline: generate, clean, analyze, charts",
	Long: `Runs the full analysis pipeline into one output directory:
synthesize the dataset, dump the raw CSV, clean it, write the summary
report and the chart set, and record a run manifest.`,
	Example: `  homestat run
  homestat run --seed 7 -d out/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := synthParams()
		if err != nil {
			return err
		}
		dir := runDir
		if dir == "" {
			dir = outputDir()
		}
		if err := utils.EnsureDir(dir); err != nil {
			return err
		}

		t, err := dataset.Synthesize(p)
		if err != nil {
			return fmt.Errorf("synthesize: %w", err)
		}
		m := run.New(p.Seed, p.Samples)
		m.RowsRaw = t.Len()

		// Raw dump first, before any cleaning touches the table.
		rawPath := filepath.Join(dir, csvName())
		if err := dataset.WriteCSV(t, rawPath); err != nil {
			return err
		}
		m.AddArtifact(rawPath, "csv")
		fmt.Printf("✓ Generated %d rows -> %s\n", t.Len(), rawPath)

		cleaned, crep := clean.Clean(t)
		m.RowsClean = cleaned.Len()
		fmt.Printf("✓ Cleaned: %d rows kept, %d imputed price, %d imputed size, %d dropped\n",
			cleaned.Len(), crep.ImputedPrice, crep.ImputedSize, crep.Dropped)
		if cfg != nil && cfg.WriteCleanedCSV {
			cleanedPath := cleanedCSVPath(rawPath)
			if err := dataset.WriteCSV(cleaned, cleanedPath); err != nil {
				return err
			}
			m.AddArtifact(cleanedPath, "csv")
		}

		rep, err := analysis.Analyze(cleaned, analysis.DefaultOptions())
		if err != nil {
			return err
		}
		mdPath := filepath.Join(dir, "summary.md")
		if err := utils.SafeWriteFile(mdPath, []byte(rep.Markdown())); err != nil {
			return err
		}
		m.AddArtifact(mdPath, "report")
		fmt.Printf("✓ Summary -> %s\n", mdPath)

		r := charts.New(chartOptions())
		written, err := r.RenderAll(cleaned, dir, nil)
		if err != nil {
			return err
		}
		for _, path := range written {
			m.AddArtifact(path, "chart")
		}
		fmt.Printf("✓ Rendered %d charts\n", len(written))

		if runXLSX {
			xlsxPath := filepath.Join(dir, "housing_data.xlsx")
			if err := export.XLSX(cleaned, xlsxPath); err != nil {
				return err
			}
			m.AddArtifact(xlsxPath, "xlsx")
			fmt.Printf("✓ Workbook -> %s\n", xlsxPath)
		}

		if cfg != nil {
			path, err := m.Save(cfg.RunsDir)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Run %s recorded (%s)\n", m.ID, path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runDir, "dir", "d", "", "output directory (default output_dir from config)")
	runCmd.Flags().BoolVar(&runXLSX, "xlsx", false, "also export the cleaned table as an XLSX workbook")
}
