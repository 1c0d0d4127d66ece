package export

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

func TestXLSXRejectsDirtyTable(t *testing.T) {
	tab := &dataset.Table{Records: []dataset.Record{{Price: math.NaN(), Size: 100}}}
	if err := XLSX(tab, filepath.Join(t.TempDir(), "out.xlsx")); err == nil {
		t.Fatal("expected error for table with missing price")
	}
}

func TestXLSXWritesWorkbook(t *testing.T) {
	p := dataset.DefaultParams()
	p.Samples = 30
	p.MissingPrice = 2
	p.MissingSize = 1
	tab, err := dataset.Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	cleaned, _ := clean.Clean(tab)

	path := filepath.Join(t.TempDir(), "housing_data.xlsx")
	if err := XLSX(cleaned, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Data")
	if err != nil {
		t.Fatalf("read data sheet: %v", err)
	}
	if len(rows) != cleaned.Len()+1 {
		t.Fatalf("data rows: got %d, want %d", len(rows), cleaned.Len()+1)
	}
	if rows[0][0] != "price" || rows[0][7] != "sale_date" {
		t.Fatalf("header row: %v", rows[0])
	}

	sumRows, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read summary sheet: %v", err)
	}
	// header + 8 column summaries
	if len(sumRows) != 9 {
		t.Fatalf("summary rows: got %d, want 9", len(sumRows))
	}
	if sumRows[1][0] != "price" || sumRows[1][1] != "numeric" {
		t.Fatalf("summary first row: %v", sumRows[1])
	}
}
