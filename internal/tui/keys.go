package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/teakit/tabs"
)

type KeyMap struct {
	Start  key.Binding
	Append key.Binding
	Help   key.Binding
	Quit   key.Binding
	Tabs   tabs.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "start"),
		),
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add note"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tabs: tabs.DefaultKeyMap(),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Tabs.Next, k.Append, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Append},
		{k.Tabs.Next, k.Tabs.Prev},
		{k.Help, k.Quit},
	}
}
