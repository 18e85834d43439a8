package metas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/ui/theme"
)

const (
	METAS_CURSOR_TOP  = 0
	METAS_SCROLL_STEP = 1

	METAS_WIDTH_RATIO          = 0.33
	METAS_HEIGHT_BOTTOM_MARGIN = 4
)

type line struct {
	entry registry.MetaEntry
	child bool
	index int
}

// Model is the metadata pane. Labels and properties rows fold; their
// children come from the rows already fetched, never a re-fetch.
type Model struct {
	focus bool
	keys  keyMap
	vp    viewport.Model
	style lipgloss.Style

	selection registry.Selection
	entries   []registry.MetaEntry
	expanded  map[string]bool

	cursor int
	lines  []line
}

func NewModel() *Model {
	return &Model{
		keys: newKeyMap(),
		vp:   viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Overlay0()),
		expanded: map[string]bool{},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetEntriesMsg:
		m.selection = msg.Selection
		m.entries = msg.Entries
		m.expanded = map[string]bool{}
		m.cursor = 0
		m.vp.SetYOffset(0)
		m.buildLines()
	case ClearMsg:
		m.selection = registry.Selection{}
		m.entries = nil
		m.expanded = map[string]bool{}
		m.cursor = 0
		m.vp.SetYOffset(0)
		m.buildLines()
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width) * METAS_WIDTH_RATIO)
		m.vp.Height = msg.Height - METAS_HEIGHT_BOTTOM_MARGIN
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > METAS_CURSOR_TOP {
				m.cursor--
			} else {
				m.vp.ScrollUp(METAS_SCROLL_STEP)
			}
		case key.Matches(msg, m.keys.down):
			if m.cursor < min(m.vp.Height-1, len(m.lines)-1) {
				m.cursor++
			} else {
				m.vp.ScrollDown(METAS_SCROLL_STEP)
			}
		case key.Matches(msg, m.keys.action):
			if l, ok := m.current(); ok && l.entry.Expandable() && !l.child {
				m.expanded[l.entry.Key] = !m.expanded[l.entry.Key]
				m.buildLines()
			}
		}
	}

	return m, nil
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

// Selection is the artifact version the rows belong to.
func (m *Model) Selection() registry.Selection {
	return m.selection
}

func (m *Model) current() (line, bool) {
	actual := m.cursor + m.vp.YOffset
	if actual < 0 || actual >= len(m.lines) {
		return line{}, false
	}
	return m.lines[actual], true
}

func (m *Model) buildLines() {
	lines := []line{}
	index := 0
	for _, entry := range m.entries {
		lines = append(lines, line{entry: entry, index: index})
		index++
		if !entry.Expandable() || !m.expanded[entry.Key] {
			continue
		}
		for _, child := range registry.ExpandMeta(entry) {
			lines = append(lines, line{entry: child, child: true, index: index})
			index++
		}
	}
	m.lines = lines
}

func (m *Model) render() string {
	var result strings.Builder
	for _, l := range m.lines {
		result.WriteString(m.renderLine(l) + "\n")
	}
	return result.String()
}

func (m *Model) renderLine(l line) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Sky())
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text())
	if l.entry.Key == "state" {
		valueStyle = valueStyle.Foreground(theme.StateColor(l.entry.Value))
	}

	indent := " "
	if l.child {
		indent = "   "
	}

	text := l.entry.Key
	if l.entry.Expandable() {
		marker := "▸"
		if m.expanded[l.entry.Key] {
			marker = "▾"
		}
		text = fmt.Sprintf("%s %s", marker, l.entry.Key)
	}

	rendered := lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.renderCursor(l.index),
		indent,
		keyStyle.Render(text),
	)
	if l.entry.Value != "" {
		rendered = lipgloss.JoinHorizontal(
			lipgloss.Left,
			rendered,
			keyStyle.Render(": "),
			valueStyle.Render(l.entry.Value),
		)
	}
	return lipgloss.NewStyle().MaxWidth(m.vp.Width).Render(rendered)
}

func (m *Model) renderCursor(index int) string {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if !m.focus {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}
	if m.cursor == index-m.vp.YOffset {
		return style.Render(">")
	}
	return style.Render(" ")
}

func (m *Model) renderTopBar() string {
	title := "Metas"
	if m.selection.HasArtifact() {
		title = fmt.Sprintf("Metas: %s", m.selection.String())
	}
	return lipgloss.NewStyle().
		Foreground(theme.Subtext1()).
		Padding(0, 1).
		MaxWidth(m.vp.Width).
		Render(title)
}
