package sunmao

import "fmt"

// Panel is one rectangular node of the layout: it owns a Region inside
// the tree, references an externally owned drawing surface, and holds at
// most one child per direction. Panels are created by Tenon and live for
// as long as their Tree.
type Panel struct {
	tree     *Tree
	id       panelID
	parent   panelID // arena index, noPanel for the root
	region   Region
	surface  Drawable
	children map[Direction]panelID
	title    string
}

// Tree returns the tree this panel belongs to.
func (p *Panel) Tree() *Tree {
	return p.tree
}

// Region returns the panel's current region. Attaching tenons shrinks it.
func (p *Panel) Region() Region {
	return p.region
}

// Surface returns the panel's drawing surface, the escape hatch for
// backend operations the layout core does not model.
func (p *Panel) Surface() Drawable {
	return p.surface
}

// Parent returns the parent panel, or nil for the root.
func (p *Panel) Parent() *Panel {
	if p.parent == noPanel {
		return nil
	}
	return p.tree.panels[p.parent]
}

// Root returns the root of the tree this panel belongs to.
func (p *Panel) Root() *Panel {
	return p.tree.Root()
}

// Title returns the title the panel was created with, if any.
func (p *Panel) Title() string {
	return p.title
}

// Tenon attaches a child panel in the given direction, carving size
// layout units from that edge of the calling panel's current region. The
// caller's region shrinks to the remainder, so later calls allocate from
// what is left, never from the original region: attaching top then left
// yields a different left child than left then top.
//
// Each direction holds at most one child; a second request fails with
// ErrDirectionOccupied and leaves the tree unchanged. Unless disabled
// with AutoAlign(false), the child is aligned with its parent along the
// axis implied by the direction.
func (p *Panel) Tenon(dir Direction, size float64, opts ...TenonOption) (*Panel, error) {
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	if _, occupied := p.children[dir]; occupied {
		return nil, fmt.Errorf("%w: %s of panel %d", ErrDirectionOccupied, dir, p.id)
	}
	child, remainder, err := Allocate(p.region, dir, size)
	if err != nil {
		return nil, err
	}

	cfg := defaultTenonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	surface, err := p.tree.fig.NewSurface(SurfaceConfig{
		Region:    child,
		Title:     cfg.title,
		TitleSide: cfg.titleSide,
		AxesOff:   cfg.axesOff,
		Pad:       cfg.pad,
	})
	if err != nil {
		return nil, fmt.Errorf("sunmao: tenon surface: %w", err)
	}

	// Commit only once the backend has accepted the surface.
	c := &Panel{
		tree:     p.tree,
		id:       panelID(len(p.tree.panels)),
		parent:   p.id,
		region:   child,
		surface:  surface,
		children: make(map[Direction]panelID),
		title:    cfg.title,
	}
	p.tree.panels = append(p.tree.panels, c)
	p.children[dir] = c.id
	p.region = remainder

	if cfg.autoAlign {
		if err := p.AlignAxes(dir.Axis(), []*Panel{p, c}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// GetTenon returns the child in the given direction. It fails with
// ErrNoSuchChild when the slot is empty.
func (p *Panel) GetTenon(dir Direction) (*Panel, error) {
	if !dir.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	id, ok := p.children[dir]
	if !ok {
		return nil, fmt.Errorf("%w: %s of panel %d", ErrNoSuchChild, dir, p.id)
	}
	return p.tree.panels[id], nil
}

// Children returns the panel's direct children in direction order.
func (p *Panel) Children() []*Panel {
	var out []*Panel
	for _, dir := range directions {
		if id, ok := p.children[dir]; ok {
			out = append(out, p.tree.panels[id])
		}
	}
	return out
}

// Walk visits p and all its descendants depth-first, children in
// direction order (top, bottom, left, right). It stops early when fn
// returns false.
func (p *Panel) Walk(fn func(*Panel) bool) {
	p.walk(fn)
}

func (p *Panel) walk(fn func(*Panel) bool) bool {
	if !fn(p) {
		return false
	}
	for _, dir := range directions {
		if id, ok := p.children[dir]; ok {
			if !p.tree.panels[id].walk(fn) {
				return false
			}
		}
	}
	return true
}

// Plot draws a connected line series on the panel's surface. A WithLabel
// option records a legend entry for later legend creation.
func (p *Panel) Plot(xs, ys []float64, opts ...SeriesOption) (Handle, error) {
	var cfg seriesConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	h, err := p.surface.Line(xs, ys, cfg.style)
	if err != nil {
		return nil, err
	}
	if cfg.labeled {
		p.tree.legend.record(p, cfg.style.Label, h)
	}
	return h, nil
}

// Scatter draws a point series on the panel's surface. A WithLabel option
// records a legend entry for later legend creation.
func (p *Panel) Scatter(xs, ys []float64, opts ...SeriesOption) (Handle, error) {
	var cfg seriesConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	h, err := p.surface.Points(xs, ys, cfg.style)
	if err != nil {
		return nil, err
	}
	if cfg.labeled {
		p.tree.legend.record(p, cfg.style.Label, h)
	}
	return h, nil
}

// Image draws a dense value grid on the panel's surface as a
// pseudocolor image, row 0 at the bottom. Images carry no label and
// record no legend entry.
func (p *Panel) Image(values [][]float64) (Handle, error) {
	return p.surface.Image(values)
}

// AddLegendItem records a legend entry for a series drawn outside the
// panel's plotting calls, typically through the backend's escape hatch.
// The entry participates in legend creation exactly like one recorded
// by a labeled Plot or Scatter.
func (p *Panel) AddLegendItem(label string, h Handle) {
	p.tree.legend.record(p, label, h)
}

// SetTitle sets the panel surface's title.
func (p *Panel) SetTitle(title string) {
	p.title = title
	p.surface.SetTitle(title)
}

// SetXLabel sets the panel surface's x-axis label.
func (p *Panel) SetXLabel(label string) {
	p.surface.SetXLabel(label)
}

// SetYLabel sets the panel surface's y-axis label.
func (p *Panel) SetYLabel(label string) {
	p.surface.SetYLabel(label)
}

// SetXLim sets explicit x-axis limits on the panel surface.
func (p *Panel) SetXLim(lo, hi float64) {
	p.surface.SetRange(AxisX, lo, hi)
}

// SetYLim sets explicit y-axis limits on the panel surface.
func (p *Panel) SetYLim(lo, hi float64) {
	p.surface.SetRange(AxisY, lo, hi)
}

// XLim reports the panel surface's current x-axis limits; ok is false
// when the surface has neither data nor explicit limits.
func (p *Panel) XLim() (lo, hi float64, ok bool) {
	return p.surface.Range(AxisX)
}

// YLim reports the panel surface's current y-axis limits.
func (p *Panel) YLim() (lo, hi float64, ok bool) {
	return p.surface.Range(AxisY)
}
