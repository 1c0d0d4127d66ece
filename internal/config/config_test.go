package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Point at a file that does not exist; defaults should apply.
	c, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Seed != 42 || c.Samples != 1000 {
		t.Fatalf("seed/samples defaults: got %d/%d", c.Seed, c.Samples)
	}
	if c.MissingPrice != 50 || c.MissingSize != 30 {
		t.Fatalf("missing defaults: got %d/%d", c.MissingPrice, c.MissingSize)
	}
	if c.CSVName != "housing_data.csv" {
		t.Fatalf("csv_name default: got %q", c.CSVName)
	}
	if c.StartDate != "2023-01-01" {
		t.Fatalf("start_date default: got %q", c.StartDate)
	}
	if c.ChartBins != 30 || c.ChartWidth != 10.0 || c.ChartHeight != 6.0 {
		t.Fatalf("chart defaults: %+v", c)
	}
	if c.RunsDir == "" {
		t.Fatal("runs_dir not resolved")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Global{
		Seed: 7, Samples: 250, MissingPrice: 10, MissingSize: 5,
		StartDate: "2024-06-01", OutputDir: "out", CSVName: "h.csv",
		RunsDir: "runs", WriteCleanedCSV: true,
		ChartWidth: 8, ChartHeight: 5, ChartBins: 20,
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 7 || got.Samples != 250 || got.StartDate != "2024-06-01" {
		t.Fatalf("round trip: %+v", got)
	}
	if !got.WriteCleanedCSV || got.ChartBins != 20 {
		t.Fatalf("round trip: %+v", got)
	}
	if got.CSVName != "h.csv" || got.OutputDir != "out" || got.RunsDir != "runs" {
		t.Fatalf("round trip: %+v", got)
	}
}
