package sunmao

import "image/color"

// Axis selects which axis an operation applies to.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisBoth
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisBoth:
		return "both"
	}
	return "unknown"
}

// Anchor is a named placement descriptor for legends. Backends map it to
// their own placement model; Point gives the normalized reference point.
type Anchor string

const (
	TopLeft      Anchor = "top-left"
	TopCenter    Anchor = "top-center"
	TopRight     Anchor = "top-right"
	CenterLeft   Anchor = "center-left"
	Center       Anchor = "center"
	CenterRight  Anchor = "center-right"
	BottomLeft   Anchor = "bottom-left"
	BottomCenter Anchor = "bottom-center"
	BottomRight  Anchor = "bottom-right"
)

// anchorPoints mirrors the named-anchor table of the layout model: x grows
// right, y grows up, both in [0, 1].
var anchorPoints = map[Anchor][2]float64{
	TopLeft:      {0.02, 0.98},
	TopCenter:    {0.5, 0.98},
	TopRight:     {0.98, 0.98},
	CenterLeft:   {0.02, 0.5},
	Center:       {0.5, 0.5},
	CenterRight:  {0.98, 0.5},
	BottomLeft:   {0.02, 0.02},
	BottomCenter: {0.5, 0.02},
	BottomRight:  {0.98, 0.02},
}

// Point returns the normalized reference point for the anchor. Unknown
// anchors fall back to the top-right corner.
func (a Anchor) Point() (x, y float64) {
	if p, ok := anchorPoints[a]; ok {
		return p[0], p[1]
	}
	return 0.98, 0.98
}

// Handle identifies a rendered series on a Drawable. It is opaque to the
// layout core; backends return whatever value lets them thumbnail the
// series in a legend later.
type Handle any

// LegendEntry is one labeled series captured from a plotting call. The
// entry references, and never owns, the panel that produced it.
type LegendEntry struct {
	Label  string
	Handle Handle
	Panel  *Panel
}

// SeriesStyle carries the presentation hints a panel forwards with a
// series. A nil Color leaves the choice to the backend's palette.
type SeriesStyle struct {
	Label string
	Color color.Color
}

// SurfaceConfig describes the surface a Figure should create for a panel.
type SurfaceConfig struct {
	Region    Region
	Title     string
	TitleSide Direction
	AxesOff   bool
	// Pad is breathing room around the surface in layout units. A backend
	// hint; zero means none.
	Pad float64
}

// Drawable is the narrow capability interface the layout core needs from
// one panel's drawing surface: the primitives it observes for legend
// capture, presentation setters, and axis limits for alignment. Anything
// beyond this goes through the backend's own escape hatch.
type Drawable interface {
	// Line draws a connected line series and returns its handle.
	Line(xs, ys []float64, style SeriesStyle) (Handle, error)
	// Points draws a scatter series and returns its handle.
	Points(xs, ys []float64, style SeriesStyle) (Handle, error)
	// Image draws a dense value grid as a pseudocolor image, row 0 at
	// the bottom. Image handles carry no label and are not legend
	// material.
	Image(values [][]float64) (Handle, error)

	SetTitle(title string)
	SetXLabel(label string)
	SetYLabel(label string)

	// Range reports the surface's current limits on the given axis
	// (AxisX or AxisY). ok is false while the surface has neither data
	// nor explicitly set limits on that axis.
	Range(a Axis) (lo, hi float64, ok bool)
	// SetRange sets explicit limits on the given axis (AxisX or AxisY).
	SetRange(a Axis, lo, hi float64)

	// Legend renders a legend for the given entries on this surface,
	// replacing any previous one. Column counts are a hint; backends
	// without multi-column panel legends may ignore ncol.
	Legend(entries []LegendEntry, at Anchor, ncol int) error
	// ClearLegend removes this surface's legend, if any.
	ClearLegend()
}

// Figure creates the drawing surfaces panels are bound to and renders the
// figure-wide legend. Figures are externally owned; the layout tree only
// references them.
type Figure interface {
	NewSurface(cfg SurfaceConfig) (Drawable, error)

	// Legend renders the figure-level legend, replacing any previous one.
	Legend(entries []LegendEntry, at Anchor, ncol int) error
	// ClearLegend removes the figure-level legend, if any.
	ClearLegend()
}
