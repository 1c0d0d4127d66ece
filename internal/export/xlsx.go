// Package export writes a cleaned housing table as an XLSX workbook with
// a Data sheet and a Summary sheet.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/homestat-cli/internal/analysis"
	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

const (
	dataSheet    = "Data"
	summarySheet = "Summary"
)

// XLSX writes the table and its column summaries to path.
func XLSX(t *dataset.Table, path string) error {
	if err := clean.Verify(t); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	rep, err := analysis.Analyze(t, analysis.Options{})
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeData(f, t); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	if err := writeSummary(f, rep); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeData(f *excelize.File, t *dataset.Table) error {
	for i, name := range dataset.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(dataSheet, cell, name); err != nil {
			return err
		}
	}
	for ri, r := range t.Records {
		vals := []any{
			r.Price, r.Size, r.Bedrooms, r.Bathrooms, r.Age,
			r.DistanceToCity, r.Quality.String(), r.SaleDate.Format("2006-01-02"),
		}
		for ci, v := range vals {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, rep *analysis.Report) error {
	header := []any{"column", "kind", "min", "max", "mean", "std"}
	for ci, v := range header {
		cell, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, v); err != nil {
			return err
		}
	}
	for ri, c := range rep.Cols {
		vals := []any{c.Name, c.Kind, c.Min, c.Max, c.Mean, c.Std}
		if c.Kind != "numeric" {
			vals = []any{c.Name, c.Kind, "", "", "", ""}
		}
		for ci, v := range vals {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
