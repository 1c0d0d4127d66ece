// Package charts renders the fixed set of housing charts as PNG files
// using gonum/plot. It is a pure sink: it reads a cleaned table and chart
// options and writes raster images, nothing else.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/KaramelBytes/homestat-cli/internal/analysis"
	"github.com/KaramelBytes/homestat-cli/internal/clean"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
)

// Options holds the drawing parameters shared by every chart.
type Options struct {
	// Width and Height of single-panel charts, in inches.
	Width, Height float64
	// Bins for histograms.
	Bins int
}

// DefaultOptions is a 10x6 inch canvas with 30 histogram bins.
func DefaultOptions() Options {
	return Options{Width: 10, Height: 6, Bins: 30}
}

// Renderer writes the chart set for a cleaned table.
type Renderer struct {
	opt Options
}

func New(opt Options) *Renderer {
	if opt.Width <= 0 || opt.Height <= 0 {
		opt = DefaultOptions()
	}
	if opt.Bins <= 0 {
		opt.Bins = DefaultOptions().Bins
	}
	return &Renderer{opt: opt}
}

// chart binds an output file name to its drawing function.
type chart struct {
	Name   string
	Render func(r *Renderer, t *dataset.Table, path string) error
}

var chartSet = []chart{
	{"price_distribution.png", (*Renderer).priceDistribution},
	{"size_distribution.png", (*Renderer).sizeDistribution},
	{"neighborhood_count.png", (*Renderer).neighborhoodCount},
	{"price_vs_size.png", (*Renderer).priceVsSize},
	{"price_vs_bedrooms.png", (*Renderer).priceVsBedrooms},
	{"price_vs_neighborhood.png", (*Renderer).priceVsNeighborhood},
	{"correlation_matrix.png", (*Renderer).correlationMatrix},
	{"pair_plot.png", (*Renderer).pairPlot},
	{"facet_grid.png", (*Renderer).facetGrid},
	{"monthly_price_trend.png", (*Renderer).monthlyPriceTrend},
}

// Names lists the chart file names in render order.
func Names() []string {
	out := make([]string, len(chartSet))
	for i, c := range chartSet {
		out[i] = c.Name
	}
	return out
}

// RenderAll renders every chart (or the named subset) into dir and
// returns the paths written. The table must already be cleaned.
func (r *Renderer) RenderAll(t *dataset.Table, dir string, only []string) ([]string, error) {
	if err := clean.Verify(t); err != nil {
		return nil, fmt.Errorf("charts: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("chart dir: %w", err)
	}
	want := map[string]bool{}
	for _, n := range only {
		if !knownChart(n) {
			return nil, fmt.Errorf("unknown chart: %q", n)
		}
		want[n] = true
	}
	var written []string
	for _, c := range chartSet {
		if len(want) > 0 && !want[c.Name] {
			continue
		}
		path := filepath.Join(dir, c.Name)
		if err := c.Render(r, t, path); err != nil {
			return written, fmt.Errorf("render %s: %w", c.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func knownChart(name string) bool {
	for _, c := range chartSet {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (r *Renderer) size() (vg.Length, vg.Length) {
	return vg.Length(r.opt.Width) * vg.Inch, vg.Length(r.opt.Height) * vg.Inch
}

func (r *Renderer) priceDistribution(t *dataset.Table, path string) error {
	return r.histogram(t.Prices(), "Distribution of House Prices", "Price (USD)", path)
}

func (r *Renderer) sizeDistribution(t *dataset.Table, path string) error {
	return r.histogram(t.Sizes(), "Distribution of House Sizes", "Size (sq ft)", path)
}

func (r *Renderer) histogram(vals []float64, title, xlabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(vals), r.opt.Bins)
	if err != nil {
		return err
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)
	w, hgt := r.size()
	return p.Save(w, hgt, path)
}

func (r *Renderer) neighborhoodCount(t *dataset.Table, path string) error {
	counts := map[dataset.Quality]int{}
	for _, rec := range t.Records {
		counts[rec.Quality]++
	}
	qualities := []dataset.Quality{dataset.QualityLow, dataset.QualityMedium, dataset.QualityHigh}
	vals := make(plotter.Values, len(qualities))
	names := make([]string, len(qualities))
	for i, q := range qualities {
		vals[i] = float64(counts[q])
		names[i] = q.String()
	}

	p := plot.New()
	p.Title.Text = "Count of Houses by Neighborhood Quality"
	p.X.Label.Text = "Neighborhood Quality"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(vals, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(names...)
	w, h := r.size()
	return p.Save(w, h, path)
}

func (r *Renderer) priceVsSize(t *dataset.Table, path string) error {
	p := plot.New()
	p.Title.Text = "Price vs. Size by Neighborhood Quality"
	p.X.Label.Text = "Size (sq ft)"
	p.Y.Label.Text = "Price (USD)"

	// One scatter series per quality so the legend doubles as a hue key.
	for i, q := range []dataset.Quality{dataset.QualityLow, dataset.QualityMedium, dataset.QualityHigh} {
		var xys plotter.XYs
		for _, rec := range t.Records {
			if rec.Quality == q {
				xys = append(xys, plotter.XY{X: rec.Size, Y: rec.Price})
			}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(q.String(), s)
	}
	p.Legend.Top = true
	w, h := r.size()
	return p.Save(w, h, path)
}

func (r *Renderer) priceVsBedrooms(t *dataset.Table, path string) error {
	groups := map[int][]float64{}
	for _, rec := range t.Records {
		groups[rec.Bedrooms] = append(groups[rec.Bedrooms], rec.Price)
	}
	p := plot.New()
	p.Title.Text = "Price Distribution by Number of Bedrooms"
	p.X.Label.Text = "Bedrooms"
	p.Y.Label.Text = "Price (USD)"

	names := make([]string, 0, 5)
	for b := 1; b <= 5; b++ {
		vals := groups[b]
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(len(names)), plotter.Values(vals))
		if err != nil {
			return err
		}
		p.Add(box)
		names = append(names, fmt.Sprintf("%d", b))
	}
	p.NominalX(names...)
	w, h := r.size()
	return p.Save(w, h, path)
}

func (r *Renderer) priceVsNeighborhood(t *dataset.Table, path string) error {
	groups := map[dataset.Quality][]float64{}
	for _, rec := range t.Records {
		groups[rec.Quality] = append(groups[rec.Quality], rec.Price)
	}
	p := plot.New()
	p.Title.Text = "Price Distribution by Neighborhood Quality"
	p.X.Label.Text = "Neighborhood Quality"
	p.Y.Label.Text = "Price (USD)"

	var names []string
	for _, q := range []dataset.Quality{dataset.QualityLow, dataset.QualityMedium, dataset.QualityHigh} {
		vals := groups[q]
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(len(names)), plotter.Values(vals))
		if err != nil {
			return err
		}
		p.Add(box)
		names = append(names, q.String())
	}
	p.NominalX(names...)
	w, h := r.size()
	return p.Save(w, h, path)
}

func (r *Renderer) monthlyPriceTrend(t *dataset.Table, path string) error {
	monthly := analysis.MonthlyMeanPrice(t)
	xys := make(plotter.XYs, len(monthly))
	for i, m := range monthly {
		xys[i] = plotter.XY{X: float64(m.Month.Unix()), Y: m.MeanPrice}
	}

	p := plot.New()
	p.Title.Text = "Average House Price by Month"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Average Price (USD)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = plotutil.Color(0)
	points.Shape = plotutil.Shape(0)
	p.Add(line, points)
	w, h := r.size()
	return p.Save(w, h, path)
}
