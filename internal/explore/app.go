// Package explore is an interactive sunmao layout explorer: it grows a
// mortise/tenon tree from key presses, shows every panel as a box at its
// Region, and saves the figure through the gplot backend.
package explore

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sunmao"
	"sunmao/gplot"
)

// defaultFraction is the share of the focused panel's dimension a new
// tenon takes; +/- adjust it at runtime.
const defaultFraction = 0.4

// Model is the explorer's Bubble Tea model.
type Model struct {
	fig  *gplot.Figure
	tree *sunmao.Tree

	order []*sunmao.Panel // depth-first order, rebuilt on structural change
	focus int             // index into order

	frac    float64
	outPath string

	keys   keyMap
	help   help.Model
	status string
	errd   bool // status holds an error

	width, height int
}

// New creates an explorer over a fresh figure of the given layout size.
// Saved figures go to outPath.
func New(width, height float64, outPath string) (Model, error) {
	fig, root, err := gplot.Mortise(width, height)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		fig:     fig,
		tree:    root.Tree(),
		frac:    defaultFraction,
		outPath: outPath,
		keys:    defaultKeyMap(),
		help:    help.New(),
		status:  "t/b/l/r to attach tenons, ? for help",
	}
	m.order = m.tree.Panels()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Top):
			m = m.addTenon(sunmao.Top)
		case key.Matches(msg, m.keys.Bottom):
			m = m.addTenon(sunmao.Bottom)
		case key.Matches(msg, m.keys.Left):
			m = m.addTenon(sunmao.Left)
		case key.Matches(msg, m.keys.Right):
			m = m.addTenon(sunmao.Right)
		case key.Matches(msg, m.keys.Next):
			m.focus = (m.focus + 1) % len(m.order)
			m = m.ok("focused panel %d", m.focus)
		case key.Matches(msg, m.keys.Prev):
			m.focus = (m.focus + len(m.order) - 1) % len(m.order)
			m = m.ok("focused panel %d", m.focus)
		case key.Matches(msg, m.keys.Grow):
			m.frac = math.Min(0.9, m.frac+0.05)
			m = m.ok("tenon share %.2f", m.frac)
		case key.Matches(msg, m.keys.Shrink):
			m.frac = math.Max(0.05, m.frac-0.05)
			m = m.ok("tenon share %.2f", m.frac)
		case key.Matches(msg, m.keys.Demo):
			m = m.plotDemo()
		case key.Matches(msg, m.keys.Legend):
			if err := m.tree.CreateLegend(); err != nil {
				m = m.fail(err)
			} else {
				m = m.ok("legends created (auto)")
			}
		case key.Matches(msg, m.keys.Clear):
			m.tree.ClearLegends()
			m = m.ok("legends cleared")
		case key.Matches(msg, m.keys.Save):
			if err := m.fig.Save(m.outPath); err != nil {
				m = m.fail(err)
			} else {
				m = m.ok("saved %s", m.outPath)
			}
		}
	}
	return m, nil
}

func (m Model) focused() *sunmao.Panel {
	return m.order[m.focus]
}

func (m Model) addTenon(dir sunmao.Direction) Model {
	p := m.focused()
	r := p.Region()
	size := m.frac * r.H
	if dir == sunmao.Left || dir == sunmao.Right {
		size = m.frac * r.W
	}
	child, err := p.Tenon(dir, size)
	if err != nil {
		return m.fail(err)
	}
	m.order = m.tree.Panels()
	for i, q := range m.order {
		if q == child {
			m.focus = i
			break
		}
	}
	cr := child.Region()
	return m.ok("tenon %s: %.2g x %.2g", dir, cr.W, cr.H)
}

// plotDemo drops a labeled sine and cosine on the focused panel so
// legends have something to collect.
func (m Model) plotDemo() Model {
	const n = 64
	xs := make([]float64, n)
	sin := make([]float64, n)
	cos := make([]float64, n)
	for i := range xs {
		x := float64(i) / (n - 1) * 2 * math.Pi
		xs[i] = x
		sin[i] = math.Sin(x)
		cos[i] = math.Cos(x)
	}
	p := m.focused()
	if _, err := p.Plot(xs, sin, sunmao.WithLabel("sin(x)")); err != nil {
		return m.fail(err)
	}
	if _, err := p.Plot(xs, cos, sunmao.WithLabel("cos(x)")); err != nil {
		return m.fail(err)
	}
	return m.ok("plotted sin(x), cos(x) on the focused panel")
}

func (m Model) ok(format string, args ...any) Model {
	m.status = fmt.Sprintf(format, args...)
	m.errd = false
	return m
}

func (m Model) fail(err error) Model {
	m.status = err.Error()
	m.errd = true
	return m
}
