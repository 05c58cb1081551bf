// Package sunmao arranges rectangular plot panels around a root panel in
// the four cardinal directions, in the manner of mortise-and-tenon
// joinery: each panel (mortise) can accept one child (tenon) per edge,
// carved out of its own region.
//
// Core abstractions:
//   - Region/Allocate: pure directional carving of rectangles
//   - Tree/Panel: the arena-owned panel hierarchy; Panel.Tenon attaches
//     children and shrinks the parent's region to the remainder
//   - Legend management: per-panel entry capture from labeled plotting
//     calls, with global, local, mixed, and auto distribution modes
//   - AlignAxes: shared axis limits across a group of panels
//
// Rendering is delegated to a backend implementing Figure and Drawable;
// package gplot provides one over gonum.org/v1/plot. A Tree, its legends,
// and its alignment state belong to a single synchronous session: none of
// it is safe for concurrent use.
package sunmao

import (
	"errors"
	"fmt"
)

type panelID int

const noPanel panelID = -1

// Tree owns the panel hierarchy for one figure. It exclusively owns each
// panel's Region and direction slots; the drawing surfaces stay owned by
// the backend Figure. Discarding the Tree discards every panel at once —
// subtrees are never deleted independently.
type Tree struct {
	fig    Figure
	panels []*Panel
	legend legendState
}

// NewTree creates a layout session over an externally owned figure. The
// root panel covers Region (0, 0, width, height) in layout units.
func NewTree(fig Figure, width, height float64) (*Tree, error) {
	if fig == nil {
		return nil, errors.New("sunmao: nil figure")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: figure %g x %g", ErrInvalidSize, width, height)
	}
	region := Region{X: 0, Y: 0, W: width, H: height}
	surface, err := fig.NewSurface(SurfaceConfig{Region: region})
	if err != nil {
		return nil, fmt.Errorf("sunmao: root surface: %w", err)
	}
	t := &Tree{fig: fig, legend: newLegendState()}
	root := &Panel{
		tree:     t,
		id:       0,
		parent:   noPanel,
		region:   region,
		surface:  surface,
		children: make(map[Direction]panelID),
	}
	t.panels = append(t.panels, root)
	return t, nil
}

// Root returns the root panel.
func (t *Tree) Root() *Panel {
	return t.panels[0]
}

// Figure returns the externally owned figure this tree draws on.
func (t *Tree) Figure() Figure {
	return t.fig
}

// Panels returns every panel in depth-first traversal order from the
// root, children visited top, bottom, left, right.
func (t *Tree) Panels() []*Panel {
	out := make([]*Panel, 0, len(t.panels))
	t.Root().Walk(func(p *Panel) bool {
		out = append(out, p)
		return true
	})
	return out
}
