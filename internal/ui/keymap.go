package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit       key.Binding
	tabView    key.Binding
	showKbar   key.Binding
	addEntry   key.Binding
	deleteArti key.Binding
	openDoc    key.Binding
	refresh    key.Binding
	reverse    key.Binding
	editMetas  key.Binding
	editState  key.Binding
	saveSearch key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(key.WithKeys("ctrl+c")),
		tabView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		showKbar: key.NewBinding(
			key.WithKeys("/", "alt+k"),
			key.WithHelp("/", "search"),
		),
		addEntry: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add artifact/version"),
		),
		deleteArti: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete artifact"),
		),
		openDoc: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open document"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		reverse: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reverse versions"),
		),
		editMetas: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit metas"),
		),
		editState: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "edit state"),
		),
		saveSearch: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save search"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.showKbar,
		k.tabView,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{}, // only render short help
	}
}
