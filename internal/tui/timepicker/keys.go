package timepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the picker's bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextOption key.Binding
	PrevOption key.Binding
	Type       key.Binding
	Commit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k", "increase"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j", "decrease"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous field"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab", ":"),
			key.WithHelp("→/l", "next field"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("pgdown", "n"),
			key.WithHelp("PgDn/n", "next option"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("pgup", "p"),
			key.WithHelp("PgUp/p", "previous option"),
		),
		Type: key.NewBinding(
			key.WithKeys("/", "i"),
			key.WithHelp("/", "type a time"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Type, k.Commit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextOption, k.PrevOption, k.Type},
		{k.Commit, k.Cancel, k.Quit},
	}
}
