package charts

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

func cleanedFixture(t *testing.T) *dataset.Table {
	t.Helper()
	p := dataset.DefaultParams()
	p.Samples = 120
	p.MissingPrice = 4
	p.MissingSize = 2
	tab, err := dataset.Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	cleaned, _ := clean.Clean(tab)
	return cleaned
}

func TestRenderAllWritesEveryChart(t *testing.T) {
	dir := t.TempDir()
	r := New(Options{Width: 5, Height: 3, Bins: 15})
	written, err := r.RenderAll(cleanedFixture(t), dir, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(written) != len(Names()) {
		t.Fatalf("charts written: got %d, want %d", len(written), len(Names()))
	}
	for _, name := range Names() {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing chart %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("chart %s is empty", name)
		}
	}
}

func TestRenderAllSubset(t *testing.T) {
	dir := t.TempDir()
	r := New(DefaultOptions())
	written, err := r.RenderAll(cleanedFixture(t), dir, []string{"price_distribution.png"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != "price_distribution.png" {
		t.Fatalf("subset render: %v", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "size_distribution.png")); err == nil {
		t.Fatal("unrequested chart was rendered")
	}
}

func TestRenderAllUnknownChart(t *testing.T) {
	r := New(DefaultOptions())
	if _, err := r.RenderAll(cleanedFixture(t), t.TempDir(), []string{"nope.png"}); err == nil {
		t.Fatal("expected error for unknown chart name")
	}
}

func TestRenderAllRejectsDirtyTable(t *testing.T) {
	tab := &dataset.Table{Records: []dataset.Record{{Price: math.NaN(), Size: 100}}}
	r := New(DefaultOptions())
	if _, err := r.RenderAll(tab, t.TempDir(), nil); err == nil {
		t.Fatal("expected error for table with missing price")
	}
}
