package explore

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the explorer
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - focused panel, emphasis
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, dimmed text
)

// Styles contains shared style definitions used across the explorer.
var Styles = struct {
	Title  lipgloss.Style // Bold accent - header line
	Focus  lipgloss.Style // Highlight - the focused panel indicator
	Status lipgloss.Style // Accent - status messages
	Error  lipgloss.Style // Danger - failed operations
	Hint   lipgloss.Style // Muted - help hints
	Canvas lipgloss.Style // Muted - the layout grid itself
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Focus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Canvas: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
