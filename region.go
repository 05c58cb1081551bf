package sunmao

import "fmt"

// Direction names one of the four edges a tenon can be attached to.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// directions is the canonical iteration order for child slots. Traversal,
// legend collection, and structure reporting all follow it so results are
// deterministic.
var directions = [4]Direction{Top, Bottom, Left, Right}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) valid() bool {
	return d >= Top && d <= Right
}

// Axis returns the axis implied by attachment in this direction: panels
// stacked vertically (top/bottom) share an x axis, panels placed side by
// side (left/right) share a y axis.
func (d Direction) Axis() Axis {
	if d == Top || d == Bottom {
		return AxisX
	}
	return AxisY
}

// Region is an axis-aligned rectangle in the layout's coordinate space.
// The origin is the bottom-left corner, matching the drawing backends.
// A valid Region has W > 0 and H > 0.
type Region struct {
	X, Y, W, H float64
}

// Allocate carves a child region of the given size from one edge of the
// parent and returns it together with what remains of the parent. For
// top/bottom the child spans the parent's full width and size of its
// height; left/right is symmetric with width. Child and remainder exactly
// tile the parent.
//
// Allocate is pure: it never mutates its inputs. Callers that want the
// shrink-on-allocation behavior store the remainder back themselves.
func Allocate(parent Region, dir Direction, size float64) (child, remainder Region, err error) {
	if !dir.valid() {
		return Region{}, Region{}, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	limit := parent.H
	if dir == Left || dir == Right {
		limit = parent.W
	}
	if size <= 0 || size >= limit {
		return Region{}, Region{}, fmt.Errorf("%w: size %g must be in (0, %g)", ErrInvalidSize, size, limit)
	}

	switch dir {
	case Top:
		child = Region{X: parent.X, Y: parent.Y + parent.H - size, W: parent.W, H: size}
		remainder = Region{X: parent.X, Y: parent.Y, W: parent.W, H: parent.H - size}
	case Bottom:
		child = Region{X: parent.X, Y: parent.Y, W: parent.W, H: size}
		remainder = Region{X: parent.X, Y: parent.Y + size, W: parent.W, H: parent.H - size}
	case Left:
		child = Region{X: parent.X, Y: parent.Y, W: size, H: parent.H}
		remainder = Region{X: parent.X + size, Y: parent.Y, W: parent.W - size, H: parent.H}
	case Right:
		child = Region{X: parent.X + parent.W - size, Y: parent.Y, W: size, H: parent.H}
		remainder = Region{X: parent.X, Y: parent.Y, W: parent.W - size, H: parent.H}
	}
	return child, remainder, nil
}
