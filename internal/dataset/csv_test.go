package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSVRoundTrip(t *testing.T) {
	p := DefaultParams()
	p.Samples = 50
	p.MissingPrice = 5
	p.MissingSize = 3
	orig, err := Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}

	path := filepath.Join(t.TempDir(), "housing_data.csv")
	if err := WriteCSV(orig, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Len() != orig.Len() {
		t.Fatalf("rows: got %d, want %d", got.Len(), orig.Len())
	}
	for i := range orig.Records {
		a, b := orig.Records[i], got.Records[i]
		if Missing(a.Price) != Missing(b.Price) || (!Missing(a.Price) && a.Price != b.Price) {
			t.Fatalf("row %d: price did not round-trip", i)
		}
		if Missing(a.Size) != Missing(b.Size) || (!Missing(a.Size) && a.Size != b.Size) {
			t.Fatalf("row %d: size did not round-trip", i)
		}
		if a.Bedrooms != b.Bedrooms || a.Bathrooms != b.Bathrooms || a.Age != b.Age {
			t.Fatalf("row %d: int columns did not round-trip", i)
		}
		if a.DistanceToCity != b.DistanceToCity {
			t.Fatalf("row %d: distance did not round-trip", i)
		}
		if a.Quality != b.Quality || !a.SaleDate.Equal(b.SaleDate) {
			t.Fatalf("row %d: quality/date did not round-trip", i)
		}
	}
}

func TestWriteCSVHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCSV(&Table{}, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := strings.Join(Columns, ",") + "\n"
	if string(b) != want {
		t.Fatalf("header: got %q, want %q", string(b), want)
	}
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "price,size,rooms\n1,2,3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadCSV(path); err == nil {
		t.Fatal("expected header error")
	}
}

func TestReadCSVRejectsBadField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := strings.Join(Columns, ",") + "\n" +
		"500000,2000,three,2,10,5.0,Low,2023-01-01\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ReadCSV(path)
	if err == nil || !strings.Contains(err.Error(), "bedrooms") {
		t.Fatalf("expected bedrooms coercion error, got: %v", err)
	}
}

func TestReadCSVRejectsBadQuality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := strings.Join(Columns, ",") + "\n" +
		"500000,2000,3,2,10,5.0,Great,2023-01-01\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ReadCSV(path)
	if err == nil || !strings.Contains(err.Error(), "neighborhood_quality") {
		t.Fatalf("expected quality error, got: %v", err)
	}
}

func TestReadCSVMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "miss.csv")
	content := strings.Join(Columns, ",") + "\n" +
		",2000,3,2,10,5.0,Low,2023-01-01\n" +
		"500000,,3,2,10,5.0,High,2023-01-02\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tab, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !Missing(tab.Records[0].Price) {
		t.Fatal("expected missing price in row 1")
	}
	if !Missing(tab.Records[1].Size) {
		t.Fatal("expected missing size in row 2")
	}
}
