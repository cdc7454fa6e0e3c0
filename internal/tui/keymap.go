package tui

import "github.com/charmbracelet/bubbles/key"

// Keymap contains the host's key bindings. The tab strip itself is driven by
// the mouse; these keys act on the week and selection the App owns.
type Keymap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		PrevWeek: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[/h", "previous week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]/l", "next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy date"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Today, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWeek, k.NextWeek, k.Today},
		{k.Copy, k.Help, k.Quit},
	}
}
