package explore

import "strings"

// grid is a rune-cell compositor for the layout view: panel boxes are
// painted onto it in traversal order, so overlapping later draws win.
// Styling is applied to the finished grid as a whole, which keeps the
// compositing ANSI-free.
type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &grid{w: w, h: h, cells: cells}
}

var (
	singleBorder = [6]rune{'┌', '┐', '└', '┘', '─', '│'}
	doubleBorder = [6]rune{'╔', '╗', '╚', '╝', '═', '║'}
)

// box paints a rectangular border with its top-left corner at (x, y).
// Boxes smaller than 2x2 cells are skipped. double selects the
// double-line border used for the focused panel.
func (g *grid) box(x, y, w, h int, double bool) {
	if w < 2 || h < 2 {
		return
	}
	b := singleBorder
	if double {
		b = doubleBorder
	}
	g.set(x, y, b[0])
	g.set(x+w-1, y, b[1])
	g.set(x, y+h-1, b[2])
	g.set(x+w-1, y+h-1, b[3])
	for i := x + 1; i < x+w-1; i++ {
		g.set(i, y, b[4])
		g.set(i, y+h-1, b[4])
	}
	for j := y + 1; j < y+h-1; j++ {
		g.set(x, j, b[5])
		g.set(x+w-1, j, b[5])
	}
}

// text paints a string starting at (x, y), clipped to the grid.
func (g *grid) text(x, y int, s string) {
	for i, r := range s {
		g.set(x+i, y, r)
	}
}

func (g *grid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}
