package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/analysis"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

var (
	anaOutputPath string
	anaSampleRows int
	anaGroupBy    []string
	anaCorr       bool
	anaMonthly    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <csv>",
	Short: "Summarize a cleaned housing CSV (univariate, grouped, correlations, monthly trend)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSV(args[0])
		if err != nil {
			return err
		}

		opt := analysis.DefaultOptions()
		if anaSampleRows >= 0 {
			opt.SampleRows = anaSampleRows
		}
		if cmd.Flags().Changed("group-by") {
			opt.GroupBy = anaGroupBy
		}
		if cmd.Flags().Changed("correlations") {
			opt.Correlations = anaCorr
		}
		if cmd.Flags().Changed("monthly") {
			opt.Monthly = anaMonthly
		}

		rep, err := analysis.Analyze(t, opt)
		if err != nil {
			return err
		}
		md := rep.Markdown()

		if anaOutputPath != "" {
			if err := os.WriteFile(anaOutputPath, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote analysis to %s\n", anaOutputPath)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write analysis (Markdown)")
	analyzeCmd.Flags().IntVar(&anaSampleRows, "sample-rows", 5, "number of sample rows to include")
	analyzeCmd.Flags().StringSliceVar(&anaGroupBy, "group-by", []string{"bedrooms", "neighborhood_quality"}, "columns to group price summaries by")
	analyzeCmd.Flags().BoolVar(&anaCorr, "correlations", true, "compute Pearson correlations among numeric columns")
	analyzeCmd.Flags().BoolVar(&anaMonthly, "monthly", true, "aggregate mean price per sale month")
}
