package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the browser view
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	AddAll     key.Binding
	Remove     key.Binding
	ClearSel   key.Binding
	Fetch      key.Binding
	Copy       key.Binding
	ClearText  key.Binding
	Search     key.Binding
	NextPanel  key.Binding
	Reconnect  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap is the browser view's default bindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "expand dir / add file"),
	),
	AddAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add all files in dir"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "remove from selection"),
	),
	ClearSel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear selection"),
	),
	Fetch: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fetch & append"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy text"),
	),
	ClearText: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear text"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	NextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	Reconnect: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reconnect"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll output up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll output down"),
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

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.AddAll, k.Fetch, k.Search, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm, k.NextPanel, k.Search},
		{k.AddAll, k.Remove, k.ClearSel},
		{k.Fetch, k.Copy, k.ClearText, k.ScrollUp, k.ScrollDown},
		{k.Reconnect, k.Help, k.Quit},
	}
}
