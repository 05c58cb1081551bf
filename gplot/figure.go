// Package gplot renders sunmao layouts with gonum.org/v1/plot. A Figure
// owns one canvas worth of surfaces; each panel's surface wraps a
// *plot.Plot drawn into the sub-canvas matching the panel's Region.
package gplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"sunmao"
)

// Option configures a Figure.
type Option func(*Figure)

// WithDPI sets the raster resolution used by Save for image formats.
func WithDPI(dpi int) Option {
	return func(f *Figure) { f.dpi = dpi }
}

// WithBackground sets the figure background color.
func WithBackground(c color.Color) Option {
	return func(f *Figure) { f.bg = c }
}

// AxesOff hides the axes on every surface the figure creates.
func AxesOff() Option {
	return func(f *Figure) { f.axesOff = true }
}

// Figure is a gonum/plot-backed sunmao.Figure. Layout units map to
// inches when rendering.
type Figure struct {
	width, height float64
	dpi           int
	bg            color.Color
	axesOff       bool
	surfaces      []*Surface
	legend        *figureLegend
}

type figureLegend struct {
	entries []sunmao.LegendEntry
	at      sunmao.Anchor
	ncol    int
}

var _ sunmao.Figure = (*Figure)(nil)

// New creates a figure width x height layout units in size.
func New(width, height float64, opts ...Option) *Figure {
	f := &Figure{
		width:  width,
		height: height,
		dpi:    96,
		bg:     color.White,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mortise creates a figure and a layout session over it, returning the
// figure and the root panel with Region (0, 0, width, height).
func Mortise(width, height float64, opts ...Option) (*Figure, *sunmao.Panel, error) {
	f := New(width, height, opts...)
	tree, err := sunmao.NewTree(f, width, height)
	if err != nil {
		return nil, nil, err
	}
	return f, tree.Root(), nil
}

// NewSurface implements sunmao.Figure.
func (f *Figure) NewSurface(cfg sunmao.SurfaceConfig) (sunmao.Drawable, error) {
	p := plot.New()
	if cfg.Title != "" {
		// gonum/plot titles render above the plot; other sides fall back
		// to the top.
		p.Title.Text = cfg.Title
	}
	if cfg.AxesOff || f.axesOff {
		p.HideAxes()
	}
	s := &Surface{plot: p, region: cfg.Region, pad: cfg.Pad}
	f.surfaces = append(f.surfaces, s)
	return s, nil
}

// Legend implements sunmao.Figure: it retains the figure-level legend for
// rendering. Handles must come from this backend's surfaces.
func (f *Figure) Legend(entries []sunmao.LegendEntry, at sunmao.Anchor, ncol int) error {
	for _, e := range entries {
		if _, ok := e.Handle.(plot.Thumbnailer); !ok {
			return fmt.Errorf("gplot: handle for %q is not a plot.Thumbnailer", e.Label)
		}
	}
	f.legend = &figureLegend{entries: entries, at: at, ncol: ncol}
	return nil
}

// ClearLegend implements sunmao.Figure.
func (f *Figure) ClearLegend() {
	f.legend = nil
}

// Draw renders every surface into its Region's share of the canvas, then
// the figure-level legend on top.
func (f *Figure) Draw(dc draw.Canvas) {
	for _, s := range f.surfaces {
		sub := f.subCanvas(dc, s.region)
		if s.pad > 0 {
			px := vg.Length(s.pad/f.width) * dc.Rectangle.Size().X
			py := vg.Length(s.pad/f.height) * dc.Rectangle.Size().Y
			sub = draw.Crop(sub, px, -px, py, -py)
		}
		s.draw(sub)
	}
	if f.legend != nil {
		f.drawLegend(dc)
	}
}

// subCanvas crops the canvas to a Region expressed in layout units.
func (f *Figure) subCanvas(dc draw.Canvas, r sunmao.Region) draw.Canvas {
	rect := dc.Rectangle
	size := rect.Size()
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{
				X: rect.Min.X + vg.Length(r.X/f.width)*size.X,
				Y: rect.Min.Y + vg.Length(r.Y/f.height)*size.Y,
			},
			Max: vg.Point{
				X: rect.Min.X + vg.Length((r.X+r.W)/f.width)*size.X,
				Y: rect.Min.Y + vg.Length((r.Y+r.H)/f.height)*size.Y,
			},
		},
	}
}

// drawLegend draws the figure-level legend as ncol side-by-side columns.
func (f *Figure) drawLegend(dc draw.Canvas) {
	entries := f.legend.entries
	n := f.legend.ncol
	if n < 1 {
		n = 1
	}
	if n > len(entries) {
		n = len(entries)
	}
	perCol := (len(entries) + n - 1) / n

	rect := dc.Rectangle
	colW := (rect.Max.X - rect.Min.X) / vg.Length(n)
	top, left := anchorFlags(f.legend.at)
	for i := 0; i < n; i++ {
		lo, hi := i*perCol, (i+1)*perCol
		if hi > len(entries) {
			hi = len(entries)
		}
		lg := plot.NewLegend()
		lg.Top, lg.Left = top, left
		for _, e := range entries[lo:hi] {
			lg.Add(e.Label, e.Handle.(plot.Thumbnailer))
		}
		sub := draw.Canvas{
			Canvas: dc.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: rect.Min.X + colW*vg.Length(i), Y: rect.Min.Y},
				Max: vg.Point{X: rect.Min.X + colW*vg.Length(i+1), Y: rect.Max.Y},
			},
		}
		lg.Draw(sub)
	}
}

// anchorFlags maps a named anchor onto gonum legend placement: the upper
// half anchors at the top, the left third at the left edge, everything
// else at the right.
func anchorFlags(at sunmao.Anchor) (top, left bool) {
	x, y := at.Point()
	return y >= 0.5, x <= 1.0/3
}

// renderCanvas draws the whole figure onto a fresh canvas for the given
// format ("png" or "svg"; empty means PNG).
func (f *Figure) renderCanvas(format string) (io.WriterTo, error) {
	w := vg.Length(f.width) * vg.Inch
	h := vg.Length(f.height) * vg.Inch

	switch format {
	case "png", "":
		c := vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(f.dpi),
			vgimg.UseBackgroundColor(f.bg),
		)
		f.Draw(draw.New(c))
		return vgimg.PngCanvas{Canvas: c}, nil
	case "svg":
		c := vgsvg.New(w, h)
		f.Draw(draw.New(c))
		return c, nil
	default:
		return nil, fmt.Errorf("gplot: unsupported format %q", format)
	}
}

// WriteTo renders the figure in the given format and writes it to w,
// returning the byte count written.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := f.renderCanvas(format)
	if err != nil {
		return 0, err
	}
	return c.WriteTo(w)
}

// Save renders the figure to path; the extension selects the format.
// PNG and SVG are supported, a missing extension means PNG.
func (f *Figure) Save(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c, err := f.renderCanvas(format)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gplot: %w", err)
	}
	if _, err := c.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("gplot: write %s: %w", path, err)
	}
	return file.Close()
}
