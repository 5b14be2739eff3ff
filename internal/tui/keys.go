package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
	Resist   key.Binding
	GiveIn   key.Binding
	Surf     key.Binding
	Check    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Resist, k.GiveIn, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit},
		{k.Resist, k.GiveIn, k.Surf, k.Check, k.Help},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Resist: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "log resisted urge"),
		),
		GiveIn: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "log gave-in urge"),
		),
		Surf: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start/stop urge surf"),
		),
		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recheck achievements"),
		),
	}
}
