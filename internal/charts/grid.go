package charts

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KaramelBytes/homestat-cli/internal/analysis"
	"github.com/KaramelBytes/homestat-cli/internal/dataset"
	"github.com/KaramelBytes/homestat-cli/internal/stats"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ.
type corrGrid struct {
	m *analysis.CorrMatrix
}

func (g corrGrid) Dims() (int, int)   { return len(g.m.Columns), len(g.m.Columns) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Z(c, r int) float64 { return g.m.Values[r][c] }

func (r *Renderer) correlationMatrix(t *dataset.Table, path string) error {
	m, err := analysis.Correlations(t)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Correlation Matrix of Numerical Features"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	ticks := make([]plot.Tick, len(m.Columns))
	for i, name := range m.Columns {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = 0.7
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	w, h := r.size()
	return p.Save(w, h, path)
}

// pairVars are the columns shown in the pair plot.
var pairVars = []string{"price", "size", "bedrooms", "distance_to_city"}

func (r *Renderer) pairPlot(t *dataset.Table, path string) error {
	n := len(pairVars)
	cols := make([][]float64, n)
	for i, name := range pairVars {
		col, err := t.Float(name)
		if err != nil {
			return err
		}
		cols[i] = col
	}

	// Shared per-variable axis ranges so the panels line up.
	mins := make([]float64, n)
	maxs := make([]float64, n)
	for i := range cols {
		mins[i], maxs[i] = stats.MinMax(cols[i])
	}

	plots := make([][]*plot.Plot, n)
	for row := range plots {
		plots[row] = make([]*plot.Plot, n)
		for col := range plots[row] {
			p := plot.New()
			p.X.Min, p.X.Max = mins[col], maxs[col]
			if row == n-1 {
				p.X.Label.Text = pairVars[col]
			}
			if col == 0 {
				p.Y.Label.Text = pairVars[row]
			}
			if row == col {
				h, err := plotter.NewHist(plotter.Values(cols[row]), 20)
				if err != nil {
					return err
				}
				h.FillColor = plotutil.Color(0)
				p.Add(h)
			} else {
				p.Y.Min, p.Y.Max = mins[row], maxs[row]
				// hue by neighborhood quality
				for qi, q := range []dataset.Quality{dataset.QualityLow, dataset.QualityMedium, dataset.QualityHigh} {
					var xys plotter.XYs
					for ri, rec := range t.Records {
						if rec.Quality == q {
							xys = append(xys, plotter.XY{X: cols[col][ri], Y: cols[row][ri]})
						}
					}
					if len(xys) == 0 {
						continue
					}
					s, err := plotter.NewScatter(xys)
					if err != nil {
						return err
					}
					s.GlyphStyle.Color = plotutil.Color(qi)
					s.GlyphStyle.Radius = vg.Points(1)
					p.Add(s)
				}
			}
			plots[row][col] = p
		}
	}
	return writeGrid(plots, 3, 3, path)
}

func (r *Renderer) facetGrid(t *dataset.Table, path string) error {
	qualities := []dataset.Quality{dataset.QualityLow, dataset.QualityMedium, dataset.QualityHigh}
	sizeMin, sizeMax := stats.MinMax(t.Sizes())
	priceMin, priceMax := stats.MinMax(t.Prices())

	// rows: bedrooms 1..5, cols: neighborhood quality; shared axes so
	// sparse facets stay comparable (and renderable when empty)
	plots := make([][]*plot.Plot, 5)
	for bi := range plots {
		bedrooms := bi + 1
		plots[bi] = make([]*plot.Plot, len(qualities))
		for qi, q := range qualities {
			p := plot.New()
			p.Title.Text = fmt.Sprintf("%s / %d br", q, bedrooms)
			p.X.Min, p.X.Max = sizeMin, sizeMax
			p.Y.Min, p.Y.Max = priceMin, priceMax
			if bi == len(plots)-1 {
				p.X.Label.Text = "Size (sq ft)"
			}
			if qi == 0 {
				p.Y.Label.Text = "Price (USD)"
			}
			var xys plotter.XYs
			for _, rec := range t.Records {
				if rec.Bedrooms == bedrooms && rec.Quality == q {
					xys = append(xys, plotter.XY{X: rec.Size, Y: rec.Price})
				}
			}
			if len(xys) > 0 {
				s, err := plotter.NewScatter(xys)
				if err != nil {
					return err
				}
				s.GlyphStyle.Color = plotutil.Color(qi)
				s.GlyphStyle.Radius = vg.Points(1.5)
				p.Add(s)
			}
			plots[bi][qi] = p
		}
	}
	return writeGrid(plots, 4, 3, path)
}

// writeGrid lays the plots out as tiles and writes a single PNG.
// tileW/tileH are per-tile dimensions in inches.
func writeGrid(plots [][]*plot.Plot, tileW, tileH float64, path string) error {
	rows := len(plots)
	cols := len(plots[0])
	img := vgimg.New(vg.Length(tileW*float64(cols))*vg.Inch, vg.Length(tileH*float64(rows))*vg.Inch)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Millimeter, PadBottom: vg.Millimeter,
		PadLeft: vg.Millimeter, PadRight: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
