package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Execute     key.Binding
	Clear       key.Binding
	ShowTables  key.Binding
	ShowStats   key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Execute: key.NewBinding(
		key.WithKeys("ctrl+enter", "ctrl+e"),
		key.WithHelp("ctrl+e", "execute"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear editor"),
	),
	ShowTables: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "show tables"),
	),
	ShowStats: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "show stats"),
	),
	HistoryPrev: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "previous query"),
	),
	HistoryNext: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next query"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
