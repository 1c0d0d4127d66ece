package dataset

import (
	"testing"
	"time"
)

func TestSynthesizeDeterministic(t *testing.T) {
	p := DefaultParams()
	a, err := Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	b, err := Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("row count mismatch: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Records {
		ra, rb := a.Records[i], b.Records[i]
		// NaN != NaN, so compare missingness separately from values.
		if Missing(ra.Price) != Missing(rb.Price) || (!Missing(ra.Price) && ra.Price != rb.Price) {
			t.Fatalf("row %d: price differs between runs", i)
		}
		if Missing(ra.Size) != Missing(rb.Size) || (!Missing(ra.Size) && ra.Size != rb.Size) {
			t.Fatalf("row %d: size differs between runs", i)
		}
		if ra.Bedrooms != rb.Bedrooms || ra.Bathrooms != rb.Bathrooms || ra.Age != rb.Age ||
			ra.DistanceToCity != rb.DistanceToCity || ra.Quality != rb.Quality || !ra.SaleDate.Equal(rb.SaleDate) {
			t.Fatalf("row %d: records differ between runs", i)
		}
	}
}

func TestSynthesizeSeedChangesDraws(t *testing.T) {
	p := DefaultParams()
	a, _ := Synthesize(p)
	p.Seed = 7
	b, _ := Synthesize(p)
	same := true
	for i := range a.Records {
		if Missing(a.Records[i].Price) || Missing(b.Records[i].Price) {
			continue
		}
		if a.Records[i].Price != b.Records[i].Price {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical price draws")
	}
}

func TestSynthesizeMissingCounts(t *testing.T) {
	p := DefaultParams()
	tab, err := Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if tab.Len() != p.Samples {
		t.Fatalf("rows: got %d, want %d", tab.Len(), p.Samples)
	}
	var missPrice, missSize int
	for _, r := range tab.Records {
		if Missing(r.Price) {
			missPrice++
		}
		if Missing(r.Size) {
			missSize++
		}
	}
	if missPrice != p.MissingPrice {
		t.Fatalf("missing price: got %d, want %d", missPrice, p.MissingPrice)
	}
	if missSize != p.MissingSize {
		t.Fatalf("missing size: got %d, want %d", missSize, p.MissingSize)
	}
}

func TestSynthesizeFieldRanges(t *testing.T) {
	tab, err := Synthesize(DefaultParams())
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	counts := map[Quality]int{}
	for i, r := range tab.Records {
		if r.Bedrooms < 1 || r.Bedrooms > 5 {
			t.Fatalf("row %d: bedrooms %d out of [1,5]", i, r.Bedrooms)
		}
		if r.Bathrooms < 1 || r.Bathrooms > 3 {
			t.Fatalf("row %d: bathrooms %d out of [1,3]", i, r.Bathrooms)
		}
		if r.Age < 0 || r.Age > 49 {
			t.Fatalf("row %d: age %d out of [0,49]", i, r.Age)
		}
		counts[r.Quality]++
	}
	// Weights are {0.3, 0.5, 0.2}; with n=1000 each category should be
	// hit well inside these loose bands.
	if counts[QualityLow] < 200 || counts[QualityLow] > 400 {
		t.Fatalf("Low count %d outside [200,400]", counts[QualityLow])
	}
	if counts[QualityMedium] < 400 || counts[QualityMedium] > 600 {
		t.Fatalf("Medium count %d outside [400,600]", counts[QualityMedium])
	}
	if counts[QualityHigh] < 120 || counts[QualityHigh] > 300 {
		t.Fatalf("High count %d outside [120,300]", counts[QualityHigh])
	}
}

func TestSynthesizeSaleDates(t *testing.T) {
	p := DefaultParams()
	tab, err := Synthesize(p)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	want := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range tab.Records {
		if !r.SaleDate.Equal(want) {
			t.Fatalf("row %d: sale date %s, want %s", i, r.SaleDate, want)
		}
		want = want.AddDate(0, 0, 1)
	}
}

func TestSynthesizeRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.Samples = 0
	if _, err := Synthesize(p); err == nil {
		t.Fatal("expected error for zero samples")
	}
	p = DefaultParams()
	p.Samples = 10
	p.MissingPrice = 11
	if _, err := Synthesize(p); err == nil {
		t.Fatal("expected error for missing count exceeding samples")
	}
}
