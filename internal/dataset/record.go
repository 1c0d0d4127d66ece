// Package dataset defines the synthetic housing table: the record schema,
// the generator that produces it, and CSV round-tripping.
package dataset

import (
	"fmt"
	"math"
	"time"
)

// Quality is the neighborhood quality category of a listing.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityMedium:
		return "Medium"
	case QualityHigh:
		return "High"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// ParseQuality maps the CSV spelling back to a Quality value.
func ParseQuality(s string) (Quality, error) {
	switch s {
	case "Low":
		return QualityLow, nil
	case "Medium":
		return QualityMedium, nil
	case "High":
		return QualityHigh, nil
	default:
		return 0, fmt.Errorf("invalid neighborhood_quality: %q", s)
	}
}

// Record is one synthetic house observation. Price and Size may be NaN
// before cleaning; every other field is always populated.
type Record struct {
	Price          float64
	Size           float64
	Bedrooms       int
	Bathrooms      int
	Age            int
	DistanceToCity float64
	Quality        Quality
	SaleDate       time.Time
}

// Missing reports whether v is the missing-value sentinel.
func Missing(v float64) bool { return math.IsNaN(v) }

// Columns lists the schema field names in CSV order.
var Columns = []string{
	"price", "size", "bedrooms", "bathrooms", "age",
	"distance_to_city", "neighborhood_quality", "sale_date",
}

// NumericColumns lists the columns that participate in correlation and
// chart matrices, in display order.
var NumericColumns = []string{
	"price", "size", "bedrooms", "bathrooms", "age", "distance_to_city",
}

// Table is an ordered collection of Records processed as a unit.
// Insertion order is generation order and is preserved by every stage.
type Table struct {
	Records []Record
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Records) }

// Clone returns a deep copy so stages can mutate without aliasing.
func (t *Table) Clone() *Table {
	cp := make([]Record, len(t.Records))
	copy(cp, t.Records)
	return &Table{Records: cp}
}

// Float extracts a numeric column by name. Bedrooms, bathrooms and age
// are widened to float64; price and size may contain NaN before cleaning.
func (t *Table) Float(col string) ([]float64, error) {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		switch col {
		case "price":
			out[i] = r.Price
		case "size":
			out[i] = r.Size
		case "bedrooms":
			out[i] = float64(r.Bedrooms)
		case "bathrooms":
			out[i] = float64(r.Bathrooms)
		case "age":
			out[i] = float64(r.Age)
		case "distance_to_city":
			out[i] = r.DistanceToCity
		default:
			return nil, fmt.Errorf("unknown numeric column: %q", col)
		}
	}
	return out, nil
}

// Prices returns the price column including any NaN entries.
func (t *Table) Prices() []float64 {
	out, _ := t.Float("price")
	return out
}

// Sizes returns the size column including any NaN entries.
func (t *Table) Sizes() []float64 {
	out, _ := t.Float("size")
	return out
}
