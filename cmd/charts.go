package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/charts"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

var (
	chartsDir  string
	chartsOnly []string
)

var chartsCmd = &cobra.Command{
	Use:   "charts <csv>",
	Short: "Render the housing chart set as PNG files",
	Long: `Renders the fixed chart set from a cleaned housing CSV:
  ` + strings.Join(charts.Names(), "\n  "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSV(args[0])
		if err != nil {
			return err
		}
		r := charts.New(chartOptions())
		written, err := r.RenderAll(t, chartsDir, chartsOnly)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Printf("✓ %s\n", filepath.Base(path))
		}
		fmt.Printf("✓ Rendered %d charts to %s\n", len(written), chartsDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVarP(&chartsDir, "dir", "d", ".", "directory to write PNG files")
	chartsCmd.Flags().StringSliceVar(&chartsOnly, "only", nil, "subset of chart file names to render")
}

func chartOptions() charts.Options {
	opt := charts.DefaultOptions()
	if cfg != nil {
		if cfg.ChartWidth > 0 {
			opt.Width = cfg.ChartWidth
		}
		if cfg.ChartHeight > 0 {
			opt.Height = cfg.ChartHeight
		}
		if cfg.ChartBins > 0 {
			opt.Bins = cfg.ChartBins
		}
	}
	return opt
}
