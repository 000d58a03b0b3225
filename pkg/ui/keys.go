package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the presenter's key bindings. It implements help.KeyMap.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	First     key.Binding
	Last      key.Binding
	Jump      key.Binding
	Highlight key.Binding
	Unfocus   key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Notes     key.Binding
	Play      key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " ", "n"),
			key.WithHelp("→/l/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "backspace"),
			key.WithHelp("←/h", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Highlight: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "highlight"),
		),
		Unfocus: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Notes: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "notes"),
		),
		Play: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "play/pause"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy slide"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the one-line footer hint.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Notes, k.Help, k.Quit}
}

// FullHelp is shown after pressing '?'.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last, k.Jump},
		{k.ScrollUp, k.ScrollDn, k.Highlight, k.Unfocus},
		{k.Notes, k.Play, k.Copy, k.Help, k.Quit},
	}
}
