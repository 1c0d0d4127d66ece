// Package analysis computes the descriptive summaries of a cleaned
// housing table: per-column statistics, grouped price summaries, a
// Pearson correlation matrix, and the monthly price trend. Reports render
// to compact Markdown for stdout or a .md artifact.
package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
	"github.com/KaramelBytes/homestat-cli/internal/stats"
)

// Options controls which sections Analyze computes.
type Options struct {
	// Correlations computes the Pearson matrix over numeric columns.
	Correlations bool
	// GroupBy computes price summaries per value of the named columns
	// ("bedrooms" and/or "neighborhood_quality").
	GroupBy []string
	// Monthly aggregates mean price per calendar month of sale_date.
	Monthly bool
	// SampleRows determines how many example rows the report includes.
	SampleRows int
}

// DefaultOptions enables every section.
func DefaultOptions() Options {
	return Options{
		Correlations: true,
		GroupBy:      []string{"bedrooms", "neighborhood_quality"},
		Monthly:      true,
		SampleRows:   5,
	}
}

// Report is a markdown-friendly summary of a cleaned table.
type Report struct {
	Rows    int
	Cols    []ColumnSummary
	Groups  []GroupResult
	Corr    *CorrMatrix
	Monthly []MonthlyPoint
	Samples [][]string
}

// ColumnSummary captures statistics for one schema column.
type ColumnSummary struct {
	Name string
	Kind string // numeric|categorical|datetime
	// Numeric stats
	Min, Max, Mean, Std float64
	// Categorical value counts, largest first
	TopValues []CategoryCount
	// Datetime range
	First, Last time.Time
}

type CategoryCount struct {
	Value string
	Count int
}

// GroupResult is the price summary for one group key, e.g. bedrooms=3.
type GroupResult struct {
	Key   string
	Size  int
	Price NumSummary
}

type NumSummary struct {
	Count          int
	Min, Max, Mean float64
}

// CorrMatrix holds a symmetric Pearson correlation matrix.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// MonthlyPoint is the mean sale price for one calendar month.
type MonthlyPoint struct {
	Month     time.Time
	MeanPrice float64
	Count     int
}

// Analyze summarizes a cleaned table. It fails fast on tables that still
// carry missing values rather than propagating them into statistics.
func Analyze(t *dataset.Table, opt Options) (*Report, error) {
	if err := clean.Verify(t); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	rep := &Report{Rows: t.Len()}

	for _, name := range dataset.NumericColumns {
		col, err := t.Float(name)
		if err != nil {
			return nil, err
		}
		lo, hi := stats.MinMax(col)
		rep.Cols = append(rep.Cols, ColumnSummary{
			Name: name, Kind: "numeric",
			Min: lo, Max: hi, Mean: stats.Mean(col), Std: stats.Std(col),
		})
	}
	rep.Cols = append(rep.Cols, qualitySummary(t), dateSummary(t))

	for _, by := range opt.GroupBy {
		groups, err := GroupPrice(t, by)
		if err != nil {
			return nil, err
		}
		rep.Groups = append(rep.Groups, groups...)
	}
	if opt.Correlations {
		m, err := Correlations(t)
		if err != nil {
			return nil, err
		}
		rep.Corr = m
	}
	if opt.Monthly {
		rep.Monthly = MonthlyMeanPrice(t)
	}
	if opt.SampleRows > 0 {
		rep.Samples = sampleRows(t, opt.SampleRows)
	}
	return rep, nil
}

func qualitySummary(t *dataset.Table) ColumnSummary {
	counts := map[dataset.Quality]int{}
	for _, r := range t.Records {
		counts[r.Quality]++
	}
	s := ColumnSummary{Name: "neighborhood_quality", Kind: "categorical"}
	for _, q := range []dataset.Quality{dataset.QualityLow, dataset.QualityMedium, dataset.QualityHigh} {
		s.TopValues = append(s.TopValues, CategoryCount{Value: q.String(), Count: counts[q]})
	}
	sort.SliceStable(s.TopValues, func(i, j int) bool {
		return s.TopValues[i].Count > s.TopValues[j].Count
	})
	return s
}

func dateSummary(t *dataset.Table) ColumnSummary {
	s := ColumnSummary{Name: "sale_date", Kind: "datetime"}
	for i, r := range t.Records {
		if i == 0 || r.SaleDate.Before(s.First) {
			s.First = r.SaleDate
		}
		if i == 0 || r.SaleDate.After(s.Last) {
			s.Last = r.SaleDate
		}
	}
	return s
}

// GroupPrice summarizes price per distinct value of the given column.
// Only the categorical-ish columns used by the facet charts are allowed.
func GroupPrice(t *dataset.Table, by string) ([]GroupResult, error) {
	key := func(r dataset.Record) string {
		switch by {
		case "bedrooms":
			return fmt.Sprintf("bedrooms=%d", r.Bedrooms)
		case "bathrooms":
			return fmt.Sprintf("bathrooms=%d", r.Bathrooms)
		case "neighborhood_quality":
			return "neighborhood_quality=" + r.Quality.String()
		default:
			return ""
		}
	}
	if key(dataset.Record{}) == "" {
		return nil, fmt.Errorf("cannot group by column: %q", by)
	}

	byKey := map[string][]float64{}
	for _, r := range t.Records {
		k := key(r)
		byKey[k] = append(byKey[k], r.Price)
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]GroupResult, 0, len(keys))
	for _, k := range keys {
		prices := byKey[k]
		lo, hi := stats.MinMax(prices)
		out = append(out, GroupResult{
			Key:  k,
			Size: len(prices),
			Price: NumSummary{
				Count: len(prices), Min: lo, Max: hi, Mean: stats.Mean(prices),
			},
		})
	}
	return out, nil
}

// Correlations computes the Pearson matrix across the numeric columns.
func Correlations(t *dataset.Table) (*CorrMatrix, error) {
	cols := make([][]float64, len(dataset.NumericColumns))
	for i, name := range dataset.NumericColumns {
		col, err := t.Float(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	n := len(cols)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := stats.Correlation(cols[i], cols[j])
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return &CorrMatrix{Columns: append([]string(nil), dataset.NumericColumns...), Values: mat}, nil
}

// MonthlyMeanPrice aggregates mean price per calendar month of sale_date,
// in chronological order.
func MonthlyMeanPrice(t *dataset.Table) []MonthlyPoint {
	type acc struct {
		sum float64
		n   int
	}
	byMonth := map[time.Time]*acc{}
	for _, r := range t.Records {
		m := time.Date(r.SaleDate.Year(), r.SaleDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		a := byMonth[m]
		if a == nil {
			a = &acc{}
			byMonth[m] = a
		}
		a.sum += r.Price
		a.n++
	}
	months := make([]time.Time, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]MonthlyPoint, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		out = append(out, MonthlyPoint{Month: m, MeanPrice: a.sum / float64(a.n), Count: a.n})
	}
	return out
}

func sampleRows(t *dataset.Table, n int) [][]string {
	if n > t.Len() {
		n = t.Len()
	}
	out := make([][]string, 0, n)
	for _, r := range t.Records[:n] {
		out = append(out, []string{
			fmt.Sprintf("%.0f", r.Price),
			fmt.Sprintf("%.0f", r.Size),
			fmt.Sprintf("%d", r.Bedrooms),
			fmt.Sprintf("%d", r.Bathrooms),
			fmt.Sprintf("%d", r.Age),
			fmt.Sprintf("%.2f", r.DistanceToCity),
			r.Quality.String(),
			r.SaleDate.Format("2006-01-02"),
		})
	}
	return out
}

// Markdown renders a compact report suitable for stdout or a .md file.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		b.WriteString(fmt.Sprintf("- %s: %s", c.Name, c.Kind))
		switch c.Kind {
		case "numeric":
			b.WriteString(fmt.Sprintf(" (min %.4g, max %.4g, mean %.4g, std %.4g)", c.Min, c.Max, c.Mean, c.Std))
		case "categorical":
			if len(c.TopValues) > 0 {
				b.WriteString(" (")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", kv.Value, kv.Count))
				}
				b.WriteString(")")
			}
		case "datetime":
			b.WriteString(fmt.Sprintf(" (%s to %s)", c.First.Format("2006-01-02"), c.Last.Format("2006-01-02")))
		}
		b.WriteString("\n")
	}

	if len(r.Groups) > 0 {
		b.WriteString("\n[PRICE BY GROUP]\n")
		for _, g := range r.Groups {
			b.WriteString(fmt.Sprintf("- %s (n=%d): mean %.4g (min %.4g, max %.4g)\n",
				g.Key, g.Size, g.Price.Mean, g.Price.Min, g.Price.Max))
		}
	}

	if r.Corr != nil && len(r.Corr.Columns) >= 2 {
		b.WriteString("\n[CORRELATIONS]\n")
		type pr struct {
			A, B string
			R    float64
		}
		var pairs []pr
		n := len(r.Corr.Columns)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pairs = append(pairs, pr{A: r.Corr.Columns[i], B: r.Corr.Columns[j], R: r.Corr.Values[i][j]})
			}
		}
		sort.Slice(pairs, func(i, j int) bool {
			ai, aj := abs(pairs[i].R), abs(pairs[j].R)
			if ai == aj {
				return pairs[i].A+pairs[i].B < pairs[j].A+pairs[j].B
			}
			return ai > aj
		})
		for _, p := range pairs {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", p.A, p.B, p.R))
		}
	}

	if len(r.Monthly) > 0 {
		b.WriteString("\n[MONTHLY MEAN PRICE]\n")
		for _, m := range r.Monthly {
			b.WriteString(fmt.Sprintf("- %s: %.0f (n=%d)\n", m.Month.Format("2006-01"), m.MeanPrice, m.Count))
		}
	}

	if len(r.Samples) > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| " + strings.Join(dataset.Columns, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(dataset.Columns)) + "\n")
		for _, row := range r.Samples {
			b.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
	}
	return b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
