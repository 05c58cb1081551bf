package sunmao

import "fmt"

// fakeFigure and fakeSurface are recording doubles for the backend
// interfaces so the core tests never touch a real canvas.

type fakeLegendCall struct {
	entries []LegendEntry
	at      Anchor
	ncol    int
}

func (c *fakeLegendCall) labels() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Label
	}
	return out
}

type fakeFigure struct {
	surfaces    []*fakeSurface
	legend      *fakeLegendCall
	clears      int
	surfaceErr  error
	legendCalls int
}

func (f *fakeFigure) NewSurface(cfg SurfaceConfig) (Drawable, error) {
	if f.surfaceErr != nil {
		return nil, f.surfaceErr
	}
	s := &fakeSurface{cfg: cfg}
	f.surfaces = append(f.surfaces, s)
	return s, nil
}

func (f *fakeFigure) Legend(entries []LegendEntry, at Anchor, ncol int) error {
	f.legend = &fakeLegendCall{entries: append([]LegendEntry(nil), entries...), at: at, ncol: ncol}
	f.legendCalls++
	return nil
}

func (f *fakeFigure) ClearLegend() {
	f.legend = nil
	f.clears++
}

type fakeExtent struct {
	lo, hi float64
	ok     bool
}

func (e *fakeExtent) grow(vs []float64) {
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

type fakeSurface struct {
	cfg            SurfaceConfig
	lines, points  int
	images         int
	title          string
	xlabel, ylabel string
	x, y           fakeExtent
	legend         *fakeLegendCall
	legendErr      error
	legendClears   int
	series         int
}

func (s *fakeSurface) Line(xs, ys []float64, style SeriesStyle) (Handle, error) {
	s.lines++
	s.x.grow(xs)
	s.y.grow(ys)
	return s.handle(style.Label), nil
}

func (s *fakeSurface) Points(xs, ys []float64, style SeriesStyle) (Handle, error) {
	s.points++
	s.x.grow(xs)
	s.y.grow(ys)
	return s.handle(style.Label), nil
}

func (s *fakeSurface) Image(values [][]float64) (Handle, error) {
	s.images++
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	s.x.grow([]float64{0, float64(cols - 1)})
	s.y.grow([]float64{0, float64(rows - 1)})
	return s.handle("image"), nil
}

func (s *fakeSurface) handle(label string) Handle {
	s.series++
	return fmt.Sprintf("series-%d-%s", s.series, label)
}

func (s *fakeSurface) SetTitle(title string)  { s.title = title }
func (s *fakeSurface) SetXLabel(label string) { s.xlabel = label }
func (s *fakeSurface) SetYLabel(label string) { s.ylabel = label }

func (s *fakeSurface) Range(a Axis) (lo, hi float64, ok bool) {
	e := s.x
	if a == AxisY {
		e = s.y
	}
	return e.lo, e.hi, e.ok
}

func (s *fakeSurface) SetRange(a Axis, lo, hi float64) {
	if a == AxisY {
		s.y = fakeExtent{lo: lo, hi: hi, ok: true}
		return
	}
	s.x = fakeExtent{lo: lo, hi: hi, ok: true}
}

func (s *fakeSurface) Legend(entries []LegendEntry, at Anchor, ncol int) error {
	if s.legendErr != nil {
		return s.legendErr
	}
	s.legend = &fakeLegendCall{entries: append([]LegendEntry(nil), entries...), at: at, ncol: ncol}
	return nil
}

func (s *fakeSurface) ClearLegend() {
	s.legend = nil
	s.legendClears++
}

// newTestTree builds a tree over a fresh fake figure.
func newTestTree(t interface{ Fatalf(string, ...any) }, width, height float64) (*Tree, *fakeFigure) {
	fig := &fakeFigure{}
	tree, err := NewTree(fig, width, height)
	if err != nil {
		t.Fatalf("NewTree(%g, %g): %v", width, height, err)
	}
	return tree, fig
}

// surfaceOf returns the fake surface behind a panel.
func surfaceOf(p *Panel) *fakeSurface {
	return p.Surface().(*fakeSurface)
}
