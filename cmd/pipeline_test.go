package cmd

import (
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

func TestCleanedCSVPath(t *testing.T) {
	if got := cleanedCSVPath("housing_data.csv"); got != "housing_data.cleaned.csv" {
		t.Fatalf("got %q", got)
	}
	if got := cleanedCSVPath(filepath.Join("out", "data.csv")); got != filepath.Join("out", "data.cleaned.csv") {
		t.Fatalf("got %q", got)
	}
}

func TestSynthParamsDefaultsWithoutConfig(t *testing.T) {
	cfg = nil
	p, err := synthParams()
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	def := dataset.DefaultParams()
	if p.Samples != def.Samples || p.Seed != def.Seed || p.MissingPrice != def.MissingPrice {
		t.Fatalf("params are not defaults: %+v", p)
	}
}

func TestGenerateThenCleanCommands(t *testing.T) {
	dir := t.TempDir()
	cfg = nil

	raw := filepath.Join(dir, "housing_data.csv")
	genOutputPath = raw
	genCleaned = false
	genNoManifest = true
	defer func() { genOutputPath = ""; genNoManifest = false }()

	if err := generateCmd.RunE(generateCmd, nil); err != nil {
		t.Fatalf("generate: %v", err)
	}
	tab, err := dataset.ReadCSV(raw)
	if err != nil {
		t.Fatalf("read raw csv: %v", err)
	}
	if tab.Len() != 1000 {
		t.Fatalf("raw rows: got %d, want 1000", tab.Len())
	}
	// the default dump is written before cleaning and must still carry
	// missing values
	if err := clean.Verify(tab); err == nil {
		t.Fatal("raw dump unexpectedly clean; expected missing values")
	}

	cleaned := filepath.Join(dir, "cleaned.csv")
	cleanOutputPath = cleaned
	defer func() { cleanOutputPath = "" }()
	if err := cleanCmd.RunE(cleanCmd, []string{raw}); err != nil {
		t.Fatalf("clean: %v", err)
	}
	out, err := dataset.ReadCSV(cleaned)
	if err != nil {
		t.Fatalf("read cleaned csv: %v", err)
	}
	if err := clean.Verify(out); err != nil {
		t.Fatalf("cleaned table failed verify: %v", err)
	}
	if out.Len() > 1000 {
		t.Fatalf("cleaning grew the table: %d", out.Len())
	}
}
