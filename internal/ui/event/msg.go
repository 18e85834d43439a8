package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/curio/internal/registry"
)

// catalog -> root
type SelectArtifactMsg struct {
	Selection registry.Selection
}

// versions -> root
type SelectVersionMsg struct {
	Selection registry.Selection
}

// kbar -> root
type SearchMsg struct {
	Criteria registry.SearchCriteria
}

// kbar(hiding) -> root
type RestoreLastSessionMsg struct{}

// -> root

type Status uint

const (
	Error Status = iota
	Warn
	Info
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

const statusDuration = time.Millisecond * 1060

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}
