package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Params controls the synthesizer. The zero value is not usable; start
// from DefaultParams and override.
type Params struct {
	Samples      int
	Seed         int64
	MissingPrice int
	MissingSize  int
	StartDate    time.Time

	// Distribution parameters. Fixed in practice, but kept explicit so
	// tests can generate degenerate tables (e.g. zero spread).
	PriceMean, PriceStd float64
	SizeMean, SizeStd   float64
	DistMean, DistStd   float64
}

// DefaultParams returns the canonical housing dataset parameters.
func DefaultParams() Params {
	return Params{
		Samples:      1000,
		Seed:         42,
		MissingPrice: 50,
		MissingSize:  30,
		StartDate:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		PriceMean:    500000, PriceStd: 100000,
		SizeMean: 2000, SizeStd: 500,
		DistMean: 5, DistStd: 2,
	}
}

// qualityWeights is the categorical sampling distribution over
// {Low, Medium, High}.
var qualityWeights = [3]float64{0.3, 0.5, 0.2}

// Synthesize produces a table of p.Samples records from an RNG seeded
// with p.Seed. The generator handle is local, so repeated calls in the
// same process neither interfere with each other nor with other users of
// math/rand. The same Params always yield bit-identical tables.
func Synthesize(p Params) (*Table, error) {
	if p.Samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", p.Samples)
	}
	if p.MissingPrice > p.Samples || p.MissingSize > p.Samples {
		return nil, fmt.Errorf("missing counts (%d price, %d size) exceed samples (%d)",
			p.MissingPrice, p.MissingSize, p.Samples)
	}
	rng := rand.New(rand.NewSource(p.Seed))
	n := p.Samples

	recs := make([]Record, n)

	// Columns are drawn one at a time so the draw sequence is stable even
	// if the record layout changes.
	for i := range recs {
		recs[i].Price = rng.NormFloat64()*p.PriceStd + p.PriceMean
	}
	for i := range recs {
		recs[i].Size = rng.NormFloat64()*p.SizeStd + p.SizeMean
	}
	for i := range recs {
		recs[i].Bedrooms = 1 + rng.Intn(5)
	}
	for i := range recs {
		recs[i].Bathrooms = 1 + rng.Intn(3)
	}
	for i := range recs {
		recs[i].Age = rng.Intn(50)
	}
	for i := range recs {
		recs[i].DistanceToCity = rng.NormFloat64()*p.DistStd + p.DistMean
	}
	for i := range recs {
		recs[i].Quality = sampleQuality(rng)
	}
	for i := range recs {
		recs[i].SaleDate = p.StartDate.AddDate(0, 0, i)
	}

	// Null out a fixed count of rows per column, chosen uniformly without
	// replacement over row indices.
	for _, i := range rng.Perm(n)[:p.MissingPrice] {
		recs[i].Price = math.NaN()
	}
	for _, i := range rng.Perm(n)[:p.MissingSize] {
		recs[i].Size = math.NaN()
	}

	return &Table{Records: recs}, nil
}

func sampleQuality(rng *rand.Rand) Quality {
	u := rng.Float64()
	acc := 0.0
	for q, w := range qualityWeights {
		acc += w
		if u < acc {
			return Quality(q)
		}
	}
	return QualityHigh
}
