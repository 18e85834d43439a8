package versions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/ui/event"
	"github.com/flavono123/curio/internal/ui/theme"
)

const (
	VERSIONS_CURSOR_TOP  = 0
	VERSIONS_SCROLL_STEP = 1

	VERSIONS_WIDTH_RATIO          = 0.33
	VERSIONS_HEIGHT_BOTTOM_MARGIN = 4
)

// Model is the version history pane for the selected artifact, rows
// in creation order (or reversed, root owns the flag).
type Model struct {
	focus bool
	keys  keyMap
	vp    viewport.Model
	style lipgloss.Style

	selection registry.Selection
	entries   []registry.VersionEntry
	cursor    int
}

func NewModel() *Model {
	return &Model{
		keys: newKeyMap(),
		vp:   viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Overlay0()),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case SetEntriesMsg:
		m.selection = msg.Selection
		m.entries = msg.Entries
		m.cursor = 0
		m.vp.SetYOffset(0)
	case ClearMsg:
		m.selection = registry.Selection{}
		m.entries = nil
		m.cursor = 0
		m.vp.SetYOffset(0)
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width) * VERSIONS_WIDTH_RATIO)
		m.vp.Height = msg.Height - VERSIONS_HEIGHT_BOTTOM_MARGIN
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > VERSIONS_CURSOR_TOP {
				m.cursor--
			} else {
				m.vp.ScrollUp(VERSIONS_SCROLL_STEP)
			}
		case key.Matches(msg, m.keys.down):
			if m.cursor < min(m.vp.Height-1, len(m.entries)-1) {
				m.cursor++
			} else {
				m.vp.ScrollDown(VERSIONS_SCROLL_STEP)
			}
		case key.Matches(msg, m.keys.action):
			if entry, ok := m.Current(); ok {
				sel := entry.Selection()
				retCmd = func() tea.Msg {
					return event.SelectVersionMsg{Selection: sel}
				}
			}
		}
	}

	return m, retCmd
}

func (m *Model) View() string {
	content := m.render()
	content = strings.TrimSuffix(content, "\n")
	m.vp.SetContent(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		m.style.Render(m.vp.View()),
	)
}

func (m *Model) Focus() {
	m.focus = true
	m.style = m.style.BorderForeground(theme.Blue())
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.BorderForeground(theme.Overlay0())
}

// Current returns the version row under the cursor.
func (m *Model) Current() (registry.VersionEntry, bool) {
	actual := m.cursor + m.vp.YOffset
	if actual < 0 || actual >= len(m.entries) {
		return registry.VersionEntry{}, false
	}
	return m.entries[actual], true
}

// Selection is the artifact the rows belong to.
func (m *Model) Selection() registry.Selection {
	return m.selection
}

func (m *Model) render() string {
	var result strings.Builder
	for index, entry := range m.entries {
		result.WriteString(m.renderLine(entry, index) + "\n")
	}
	return result.String()
}

func (m *Model) renderLine(entry registry.VersionEntry, index int) string {
	version := lipgloss.NewStyle().Foreground(theme.Lavender()).Bold(true)
	state := lipgloss.NewStyle().Foreground(theme.StateColor(entry.State))
	createdOn := lipgloss.NewStyle().Foreground(theme.Overlay0())

	rendered := lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.renderCursor(index),
		version.Render(entry.Version),
		" ",
		state.Render(entry.State),
		" ",
		createdOn.Render(entry.CreatedOn),
	)
	return lipgloss.NewStyle().MaxWidth(m.vp.Width).Render(rendered)
}

func (m *Model) renderCursor(index int) string {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if !m.focus {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}
	if m.cursor == index-m.vp.YOffset {
		return style.Render("> ")
	}
	return style.Render("  ")
}

func (m *Model) renderTopBar() string {
	title := "Versions"
	if m.selection.HasArtifact() {
		title = fmt.Sprintf("Versions: %s", m.selection.String())
	}
	return lipgloss.NewStyle().
		Foreground(theme.Subtext1()).
		Padding(0, 1).
		MaxWidth(m.vp.Width).
		Render(title)
}
