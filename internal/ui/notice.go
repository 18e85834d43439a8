package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/ui/event"
)

// notice maps a registry error to the status bar message shown for
// it. Sentinel classes get distinct wording so a conflict reads
// differently from a miss.
func notice(err error) tea.Cmd {
	var statusErr *registry.StatusError

	var message string
	status := event.Error
	switch {
	case errors.Is(err, registry.ErrBadRequest):
		message = "Registry: bad request."
		status = event.Warn
	case errors.Is(err, registry.ErrUnauthorized):
		message = "Registry: unauthorized, check your credentials."
	case errors.Is(err, registry.ErrNotFound):
		message = "Registry: not found."
		status = event.Warn
	case errors.Is(err, registry.ErrConflict):
		message = "Registry: conflicts with existing data."
		status = event.Warn
	case errors.As(err, &statusErr):
		message = fmt.Sprintf("Registry: unexpected status %d.", statusErr.Code)
	default:
		message = fmt.Sprintf("Error: %v", err)
	}

	return setStatus(message, status)
}

func setStatus(message string, status event.Status) tea.Cmd {
	return func() tea.Msg {
		return event.SetStatusMsg{Message: message, Status: status}
	}
}
