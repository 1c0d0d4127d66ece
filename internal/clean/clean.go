// Package clean turns a raw synthetic table into the analysis-ready one:
// it imputes missing price/size values and drops extreme outliers.
package clean

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/homestat-cli/internal/dataset"
	"github.com/KaramelBytes/homestat-cli/internal/stats"
)

// ZThreshold is the absolute z-score above which a row is dropped.
const ZThreshold = 3.0

// Report describes what cleaning did to a table.
type Report struct {
	RowsIn  int
	RowsOut int

	ImputedPrice int
	ImputedSize  int
	PriceFill    float64 // median of observed prices
	SizeFill     float64 // mean of observed sizes

	// Post-imputation statistics used for the z-score filter.
	PriceMean, PriceStd float64
	SizeMean, SizeStd   float64

	Dropped int
}

// Clean returns a cleaned copy of t along with a report. The input table
// is never modified.
//
// Order of operations is fixed for reproducibility: impute first, then
// compute each column's mean/std over the imputed values, then filter
// rows in a single pass. The filter is not iterated even though removal
// shifts the statistics.
func Clean(t *dataset.Table) (*dataset.Table, Report) {
	out := t.Clone()
	rep := Report{RowsIn: out.Len()}

	rep.PriceFill = stats.Median(observed(out.Prices()))
	rep.SizeFill = stats.Mean(observed(out.Sizes()))
	for i := range out.Records {
		r := &out.Records[i]
		if dataset.Missing(r.Price) {
			r.Price = rep.PriceFill
			rep.ImputedPrice++
		}
		if dataset.Missing(r.Size) {
			r.Size = rep.SizeFill
			rep.ImputedSize++
		}
	}

	prices := out.Prices()
	sizes := out.Sizes()
	rep.PriceMean, rep.PriceStd = stats.Mean(prices), stats.Std(prices)
	rep.SizeMean, rep.SizeStd = stats.Mean(sizes), stats.Std(sizes)

	kept := out.Records[:0]
	for _, r := range out.Records {
		if zScore(r.Price, rep.PriceMean, rep.PriceStd) < ZThreshold &&
			zScore(r.Size, rep.SizeMean, rep.SizeStd) < ZThreshold {
			kept = append(kept, r)
		}
	}
	out.Records = kept
	rep.RowsOut = out.Len()
	rep.Dropped = rep.RowsIn - rep.RowsOut
	return out, rep
}

// zScore returns |v - mean| / std. A zero std makes the z-score
// undefined; the column is treated as having no spread and excludes
// nothing, so 0 is returned.
func zScore(v, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return math.Abs(v-mean) / std
}

// observed filters out missing values.
func observed(col []float64) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if !dataset.Missing(v) {
			out = append(out, v)
		}
	}
	return out
}

// Verify rejects tables that still carry missing values in the required
// numeric columns. Downstream stages call it before trusting a table.
func Verify(t *dataset.Table) error {
	for i, r := range t.Records {
		if dataset.Missing(r.Price) {
			return fmt.Errorf("row %d: price is missing; table has not been cleaned", i+1)
		}
		if dataset.Missing(r.Size) {
			return fmt.Errorf("row %d: size is missing; table has not been cleaned", i+1)
		}
	}
	return nil
}
