package tui

import key "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Sidebar key.Binding
	Open    key.Binding
	Save    key.Binding
	Table   key.Binding
	Copy    key.Binding
	Paste   key.Binding
	Reload  key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Table:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "table")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Paste:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "dismiss")),
		Help:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sidebar, k.Save, k.Table, k.Copy, k.Paste, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sidebar, k.Open, k.Save, k.Reload},
		{k.Table, k.Copy, k.Paste},
		{k.Dismiss, k.Help, k.Quit},
	}
}
