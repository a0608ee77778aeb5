package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Home, End key.Binding
	Toggle              key.Binding
	ExpandAll           key.Binding
	CollapseAll         key.Binding
	Style               key.Binding
	Add, Delete, Undo   key.Binding
	Help, Quit          key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "show more/less")),
		ExpandAll:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand visible")),
		CollapseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "collapse visible")),
		Style:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "plain/card")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Undo:        key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Style, k.Add, k.Delete, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Toggle, k.ExpandAll, k.CollapseAll, k.Style},
		{k.Add, k.Delete, k.Undo},
		{k.Help, k.Quit},
	}
}
