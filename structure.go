package sunmao

import (
	"fmt"
	"strings"
)

// Structure returns an indented, human-readable description of the panel
// and everything attached to it, occupied directions in top, bottom,
// left, right order. Intended for debugging layouts; visual structure
// reporting belongs to the drawing backend.
func (p *Panel) Structure() string {
	var b strings.Builder
	p.describe(&b, 0)
	return b.String()
}

func (p *Panel) describe(b *strings.Builder, level int) {
	indent := strings.Repeat("  ", level)
	fmt.Fprintf(b, "%smortise[%d] %g x %g at (%g, %g)", indent, p.id, p.region.W, p.region.H, p.region.X, p.region.Y)
	if p.title != "" {
		fmt.Fprintf(b, " %q", p.title)
	}
	for _, dir := range directions {
		id, ok := p.children[dir]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "\n%s  %s:\n", indent, dir)
		p.tree.panels[id].describe(b, level+2)
	}
}
