package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/curio/internal/ui/theme"
	"github.com/flavono123/curio/internal/workflow"
)

const FORM_WIDTH = 60

// DoneMsg reports a finished machine to root; root still holds the
// machine and reads the outcome from it.
type DoneMsg struct {
	Status workflow.Status
	Reason string
}

// Model renders one workflow prompt at a time as a huh form and feeds
// the submitted value back into the machine. Esc cancels the whole
// workflow, not just the current prompt.
type Model struct {
	machine workflow.Machine
	prompt  workflow.Prompt
	form    *huh.Form

	value     string
	confirmed bool
}

func NewModel(machine workflow.Machine) *Model {
	m := &Model{machine: machine}
	m.build()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.machine.Advance(workflow.Cancel())
		return m, m.done()
	}

	fm, cmd := m.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.prompt.Kind == workflow.PromptConfirm {
			m.machine.Advance(workflow.Confirm(m.confirmed))
		} else {
			m.machine.Advance(workflow.Answer(m.value))
		}
		if m.machine.Status() != workflow.Running {
			return m, m.done()
		}
		m.build()
		return m, m.form.Init()
	case huh.StateAborted:
		m.machine.Advance(workflow.Cancel())
		return m, m.done()
	}

	return m, cmd
}

func (m *Model) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Lavender()).
		Padding(0, 1)
	return style.Render(m.form.View())
}

func (m *Model) build() {
	m.prompt = m.machine.Step()
	m.value = m.prompt.Value
	m.confirmed = false

	var field huh.Field
	switch m.prompt.Kind {
	case workflow.PromptSelect:
		field = huh.NewSelect[string]().
			Title(m.prompt.Title).
			Description(m.prompt.Description).
			Options(huh.NewOptions(m.prompt.Options...)...).
			Value(&m.value)
	case workflow.PromptConfirm:
		field = huh.NewConfirm().
			Title(m.prompt.Title).
			Description(m.prompt.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&m.confirmed)
	case workflow.PromptFile:
		field = huh.NewFilePicker().
			Title(m.prompt.Title).
			Description(m.prompt.Description).
			ShowSize(true).
			ShowPermissions(false).
			Value(&m.value)
	default:
		field = huh.NewInput().
			Title(m.prompt.Title).
			Description(m.prompt.Description).
			Placeholder(m.prompt.Placeholder).
			Value(&m.value)
	}

	m.form = huh.NewForm(huh.NewGroup(field)).
		WithWidth(FORM_WIDTH).
		WithShowHelp(false).
		WithTheme(huh.ThemeCatppuccin())
}

func (m *Model) done() tea.Cmd {
	status := m.machine.Status()
	reason := m.machine.Reason()
	return func() tea.Msg {
		return DoneMsg{Status: status, Reason: reason}
	}
}
