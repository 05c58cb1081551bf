package explore

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the explorer's key bindings.
type keyMap struct {
	Top    key.Binding
	Bottom key.Binding
	Left   key.Binding
	Right  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Demo   key.Binding
	Legend key.Binding
	Clear  key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Save   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Top:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tenon top")),
		Bottom: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "tenon bottom")),
		Left:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "tenon left")),
		Right:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "tenon right")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev panel")),
		Demo:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "demo series")),
		Legend: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "create legend")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear legends")),
		Grow:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger tenons")),
		Shrink: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller tenons")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save figure")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Top, k.Bottom, k.Left, k.Right, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Top, k.Bottom, k.Left, k.Right},
		{k.Next, k.Prev, k.Grow, k.Shrink},
		{k.Demo, k.Legend, k.Clear, k.Save},
		{k.Help, k.Quit},
	}
}
