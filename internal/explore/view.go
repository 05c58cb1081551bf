package explore

import (
	"fmt"

	"sunmao"
)

// View implements tea.Model. The layout occupies everything above the
// status and help lines; layout coordinates have a bottom-left origin, so
// rows are flipped for the screen.
func (m Model) View() string {
	w, h := m.width, m.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	gridH := h - 3
	if gridH < 4 {
		gridH = 4
	}

	root := m.tree.Root()
	total := figureExtent(m.order)
	g := newGrid(w, gridH)
	for i, p := range m.order {
		r := p.Region()
		x := int(float64(w) * (r.X - total.X) / total.W)
		bw := int(float64(w) * r.W / total.W)
		yTop := int(float64(gridH) * (total.Y + total.H - r.Y - r.H) / total.H)
		bh := int(float64(gridH) * r.H / total.H)
		g.box(x, yTop, bw, bh, i == m.focus)
		label := fmt.Sprintf(" %d ", i)
		if p == root {
			label = " root "
		} else if p.Title() != "" {
			label = fmt.Sprintf(" %d %s ", i, p.Title())
		}
		g.text(x+1, yTop, label)
	}

	status := Styles.Status.Render(m.status)
	if m.errd {
		status = Styles.Error.Render(m.status)
	}
	header := Styles.Title.Render("sunmao") + Styles.Hint.Render(
		fmt.Sprintf("  %d panels, share %.2f, ", len(m.order), m.frac)) +
		Styles.Focus.Render(fmt.Sprintf("focus %d", m.focus))

	return header + "\n" +
		Styles.Canvas.Render(g.String()) + "\n" +
		status + "\n" +
		m.help.View(m.keys)
}

// figureExtent is the bounding region of every panel; all current regions
// tile it exactly, since tenons only ever subdivide the root.
func figureExtent(panels []*sunmao.Panel) sunmao.Region {
	total := panels[0].Region()
	for _, p := range panels[1:] {
		r := p.Region()
		if r.X < total.X {
			total.W += total.X - r.X
			total.X = r.X
		}
		if r.Y < total.Y {
			total.H += total.Y - r.Y
			total.Y = r.Y
		}
		if r.X+r.W > total.X+total.W {
			total.W = r.X + r.W - total.X
		}
		if r.Y+r.H > total.Y+total.H {
			total.H = r.Y + r.H - total.Y
		}
	}
	return total
}
