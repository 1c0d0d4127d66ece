package run

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := New(42, 1000)
	r.RowsRaw = 1000
	r.RowsClean = 995
	r.AddArtifact(filepath.Join(dir, "housing_data.csv"), "csv")
	r.AddArtifact(filepath.Join(dir, "price_distribution.png"), "chart")

	path, err := r.Save(dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ID != r.ID || got.Seed != 42 || got.Samples != 1000 {
		t.Fatalf("manifest did not round-trip: %+v", got)
	}
	if len(got.Artifacts) != 2 || got.Artifacts[0].Kind != "csv" {
		t.Fatalf("artifacts did not round-trip: %+v", got.Artifacts)
	}
	if got.Artifacts[1].Name != "price_distribution.png" {
		t.Fatalf("artifact name: got %q", got.Artifacts[1].Name)
	}
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	a := New(1, 10)
	a.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := New(2, 20)
	b.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if _, err := a.Save(dir); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if _, err := b.Save(dir); err != nil {
		t.Fatalf("save b: %v", err)
	}
	runs, err := List(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs: got %d, want 2", len(runs))
	}
	if runs[0].Seed != 2 || runs[1].Seed != 1 {
		t.Fatalf("runs not newest-first: seeds %d, %d", runs[0].Seed, runs[1].Seed)
	}
}

func TestListMissingDir(t *testing.T) {
	runs, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}
