package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sunmao/internal/explore"
)

func main() {
	width := flag.Float64("width", 10, "figure width in layout units")
	height := flag.Float64("height", 8, "figure height in layout units")
	out := flag.String("o", "sunmao.png", "output path for saved figures (.png or .svg)")
	flag.Parse()

	model, err := explore.New(*width, *height, *out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
