package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/dataset"
	"github.com/KaramelBytes/homestat-cli/internal/export"
)

var exportOutputPath string

var exportCmd = &cobra.Command{
	Use:   "export <csv>",
	Short: "Export a cleaned housing CSV as an XLSX workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSV(args[0])
		if err != nil {
			return err
		}
		out := exportOutputPath
		if out == "" {
			ext := filepath.Ext(args[0])
			out = strings.TrimSuffix(args[0], ext) + ".xlsx"
		}
		if err := export.XLSX(t, out); err != nil {
			return err
		}
		fmt.Printf("✓ Exported %d rows to %s\n", t.Len(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "XLSX output path (default <input>.xlsx)")
}
