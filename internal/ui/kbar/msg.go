package kbar

import tea "github.com/charmbracelet/bubbletea"

// ShowMsg opens the search bar; HideMsg closes it and resets the stage.
type ShowMsg struct{}

type HideMsg struct{}

func Show() tea.Msg {
	return ShowMsg{}
}

func Hide() tea.Msg {
	return HideMsg{}
}
