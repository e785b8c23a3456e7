package preview

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the preview's key bindings.
type keyMap struct {
	Toggle key.Binding
	Left   key.Binding
	Right  key.Binding
	Faster key.Binding
	Slower key.Binding
	Reset  key.Binding
	Brand  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "-5°")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "+5°")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Brand:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "next brand")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Left, k.Right, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Left, k.Right},
		{k.Faster, k.Slower},
		{k.Brand, k.Help, k.Quit},
	}
}
