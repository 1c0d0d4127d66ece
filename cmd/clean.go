package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

var cleanOutputPath string

var cleanCmd = &cobra.Command{
	Use:   "clean <csv>",
	Short: "Impute missing values and drop outliers from a housing CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSV(args[0])
		if err != nil {
			return err
		}
		cleaned, rep := clean.Clean(t)

		out := cleanOutputPath
		if out == "" {
			out = cleanedCSVPath(args[0])
		}
		if err := dataset.WriteCSV(cleaned, out); err != nil {
			return err
		}

		fmt.Printf("✓ Cleaned %d rows -> %d rows (%s)\n", rep.RowsIn, rep.RowsOut, out)
		fmt.Printf("  imputed price: %d (median %.2f), imputed size: %d (mean %.2f)\n",
			rep.ImputedPrice, rep.PriceFill, rep.ImputedSize, rep.SizeFill)
		fmt.Printf("  dropped outliers: %d (|z| >= %.0f on price or size)\n", rep.Dropped, clean.ZThreshold)
		if debug {
			fmt.Printf("  price mean %.2f std %.2f, size mean %.2f std %.2f\n",
				rep.PriceMean, rep.PriceStd, rep.SizeMean, rep.SizeStd)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutputPath, "output", "o", "", "cleaned CSV output path (default <input>.cleaned.csv)")
}
