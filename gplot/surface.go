package gplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"

	"sunmao"
)

// Surface is one panel's gonum/plot drawing surface.
type Surface struct {
	plot   *plot.Plot
	region sunmao.Region
	pad    float64

	series int // palette cursor for unstyled series

	// Data-driven extents grow as series are added; explicit limits set
	// through SetRange win over them.
	dataX, dataY extent
	setX, setY   extent
}

type extent struct {
	lo, hi float64
	ok     bool
}

func (e *extent) grow(vs []float64) {
	for _, v := range vs {
		if !e.ok {
			e.lo, e.hi, e.ok = v, v, true
			continue
		}
		if v < e.lo {
			e.lo = v
		}
		if v > e.hi {
			e.hi = v
		}
	}
}

var _ sunmao.Drawable = (*Surface)(nil)

// Plot returns the underlying *plot.Plot, the escape hatch for gonum
// operations the layout core does not model.
func (s *Surface) Plot() *plot.Plot {
	return s.plot
}

func xys(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("gplot: %d x values against %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts, nil
}

// Line implements sunmao.Drawable.
func (s *Surface) Line(xs, ys []float64, style sunmao.SeriesStyle) (sunmao.Handle, error) {
	pts, err := xys(xs, ys)
	if err != nil {
		return nil, err
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("gplot: line: %w", err)
	}
	if style.Color != nil {
		ln.LineStyle.Color = style.Color
	} else {
		ln.LineStyle.Color = plotutil.Color(s.series)
	}
	s.series++
	s.plot.Add(ln)
	s.dataX.grow(xs)
	s.dataY.grow(ys)
	return ln, nil
}

// Points implements sunmao.Drawable.
func (s *Surface) Points(xs, ys []float64, style sunmao.SeriesStyle) (sunmao.Handle, error) {
	pts, err := xys(xs, ys)
	if err != nil {
		return nil, err
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("gplot: scatter: %w", err)
	}
	if style.Color != nil {
		sc.GlyphStyle.Color = style.Color
	} else {
		sc.GlyphStyle.Color = plotutil.Color(s.series)
	}
	sc.GlyphStyle.Shape = plotutil.Shape(s.series)
	s.series++
	s.plot.Add(sc)
	s.dataX.grow(xs)
	s.dataY.grow(ys)
	return sc, nil
}

// valueGrid adapts a dense [][]float64 to plotter.GridXYZ, row 0 at the
// bottom and unit cell spacing.
type valueGrid struct {
	values [][]float64
}

func (g valueGrid) Dims() (c, r int) {
	r = len(g.values)
	if r > 0 {
		c = len(g.values[0])
	}
	return c, r
}

func (g valueGrid) X(c int) float64    { return float64(c) }
func (g valueGrid) Y(r int) float64    { return float64(r) }
func (g valueGrid) Z(c, r int) float64 { return g.values[r][c] }

// Image implements sunmao.Drawable as a heat map over the value grid.
func (s *Surface) Image(values [][]float64) (sunmao.Handle, error) {
	rows := len(values)
	if rows == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("gplot: empty image grid")
	}
	cols := len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("gplot: ragged image grid: row %d has %d values, want %d", i, len(row), cols)
		}
	}
	hm := plotter.NewHeatMap(valueGrid{values: values}, palette.Heat(12, 1))
	s.plot.Add(hm)
	s.dataX.grow([]float64{0, float64(cols - 1)})
	s.dataY.grow([]float64{0, float64(rows - 1)})
	return hm, nil
}

// SetTitle implements sunmao.Drawable.
func (s *Surface) SetTitle(title string) {
	s.plot.Title.Text = title
}

// SetXLabel implements sunmao.Drawable.
func (s *Surface) SetXLabel(label string) {
	s.plot.X.Label.Text = label
}

// SetYLabel implements sunmao.Drawable.
func (s *Surface) SetYLabel(label string) {
	s.plot.Y.Label.Text = label
}

// Range implements sunmao.Drawable: explicit limits when set, otherwise
// the data-driven extent.
func (s *Surface) Range(a sunmao.Axis) (lo, hi float64, ok bool) {
	set, data := &s.setX, &s.dataX
	if a == sunmao.AxisY {
		set, data = &s.setY, &s.dataY
	}
	if set.ok {
		return set.lo, set.hi, true
	}
	return data.lo, data.hi, data.ok
}

// SetRange implements sunmao.Drawable.
func (s *Surface) SetRange(a sunmao.Axis, lo, hi float64) {
	if a == sunmao.AxisY {
		s.setY = extent{lo: lo, hi: hi, ok: true}
		return
	}
	s.setX = extent{lo: lo, hi: hi, ok: true}
}

// Legend implements sunmao.Drawable. gonum panel legends are single
// column; ncol is accepted as a hint and ignored.
func (s *Surface) Legend(entries []sunmao.LegendEntry, at sunmao.Anchor, ncol int) error {
	lg := plot.NewLegend()
	for _, e := range entries {
		th, ok := e.Handle.(plot.Thumbnailer)
		if !ok {
			return fmt.Errorf("gplot: handle for %q is not a plot.Thumbnailer", e.Label)
		}
		lg.Add(e.Label, th)
	}
	lg.Top, lg.Left = anchorFlags(at)
	s.plot.Legend = lg
	return nil
}

// ClearLegend implements sunmao.Drawable.
func (s *Surface) ClearLegend() {
	s.plot.Legend = plot.NewLegend()
}

// draw applies effective limits and renders the plot, legend included.
func (s *Surface) draw(dc draw.Canvas) {
	if lo, hi, ok := s.Range(sunmao.AxisX); ok {
		s.plot.X.Min, s.plot.X.Max = lo, hi
	}
	if lo, hi, ok := s.Range(sunmao.AxisY); ok {
		s.plot.Y.Min, s.plot.Y.Max = lo, hi
	}
	s.plot.Draw(dc)
}
