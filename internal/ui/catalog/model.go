package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/ui/event"
	"github.com/flavono123/curio/internal/ui/theme"
)

const (
	CATALOG_CURSOR_TOP  = 0
	CATALOG_SCROLL_STEP = 1

	CATALOG_WIDTH_RATIO          = 0.34
	CATALOG_HEIGHT_BOTTOM_MARGIN = 4 // topbar 1 + border top, down 2 + status 1
)

type line struct {
	entry registry.CatalogEntry
	index int
}

// Model is the catalog pane: a two level tree of group headers and
// artifact rows. Expanding a group the first time asks root to fetch
// its artifacts; fold state is local.
type Model struct {
	focus bool
	keys  keyMap
	help  help.Model
	vp    viewport.Model
	style lipgloss.Style

	groups   []registry.CatalogEntry
	children map[string][]registry.CatalogEntry
	expanded map[string]bool

	cursor int
	lines  []line
}

func NewModel() *Model {
	return &Model{
		focus: true, // HACK: required to be injected by root
		keys:  newKeyMap(),
		help:  help.New(),
		vp:    viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Blue()),
		children: map[string][]registry.CatalogEntry{},
		expanded: map[string]bool{},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var retCmd tea.Cmd

	switch msg := msg.(type) {
	case SetEntriesMsg:
		m.groups = msg.Entries
		m.children = map[string][]registry.CatalogEntry{}
		m.expanded = map[string]bool{}
		m.cursor = 0
		m.vp.SetYOffset(0)
		m.buildLines()
	case SetGroupMsg:
		m.children[msg.Group] = msg.Entries
		m.buildLines()
	case tea.WindowSizeMsg:
		m.vp.Width = int(float64(msg.Width) * CATALOG_WIDTH_RATIO)
		m.vp.Height = msg.Height - CATALOG_HEIGHT_BOTTOM_MARGIN
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > CATALOG_CURSOR_TOP {
				m.cursor--
			} else {
				m.vp.ScrollUp(CATALOG_SCROLL_STEP)
			}
		case key.Matches(msg, m.keys.down):
			if m.cursor < min(m.vp.Height-1, len(m.lines)-1) {
				m.cursor++
			} else {
				m.vp.ScrollDown(CATALOG_SCROLL_STEP)
			}
		case key.Matches(msg, m.keys.action):
			retCmd = m.action()
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

// Current returns the entry under the cursor.
func (m *Model) Current() (registry.CatalogEntry, bool) {
	actual := m.cursor + m.vp.YOffset
	if actual < 0 || actual >= len(m.lines) {
		return registry.CatalogEntry{}, false
	}
	return m.lines[actual].entry, true
}

// Groups returns the known group ids, for the add artifact flow.
func (m *Model) Groups() []string {
	var groups []string
	for _, e := range m.groups {
		if e.Kind == registry.CatalogGroup {
			groups = append(groups, e.Group)
		}
	}
	return groups
}

func (m *Model) action() tea.Cmd {
	entry, ok := m.Current()
	if !ok {
		return nil
	}

	switch entry.Kind {
	case registry.CatalogGroup:
		m.expanded[entry.Group] = !m.expanded[entry.Group]
		m.buildLines()
		if m.expanded[entry.Group] && m.children[entry.Group] == nil {
			group := entry.Group
			return func() tea.Msg {
				return ExpandGroupMsg{Group: group}
			}
		}
	case registry.CatalogArtifact:
		sel := registry.Selection{Group: entry.Group, Artifact: entry.Artifact}
		return func() tea.Msg {
			return event.SelectArtifactMsg{Selection: sel}
		}
	}

	return nil
}

func (m *Model) buildLines() {
	lines := []line{}
	index := 0
	for _, group := range m.groups {
		lines = append(lines, line{entry: group, index: index})
		index++
		if group.Kind != registry.CatalogGroup || !m.expanded[group.Group] {
			continue
		}
		for _, child := range m.children[group.Group] {
			lines = append(lines, line{entry: child, index: index})
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
	rendered := lipgloss.JoinHorizontal(
		lipgloss.Left,
		m.renderCursor(l.index),
		m.renderIndent(l.entry),
		m.renderEntry(l.entry),
	)
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

func (m *Model) renderIndent(entry registry.CatalogEntry) string {
	if entry.Kind == registry.CatalogArtifact {
		return "   "
	}
	return " "
}

func (m *Model) renderEntry(entry registry.CatalogEntry) string {
	switch entry.Kind {
	case registry.CatalogGroup:
		marker := "▸"
		if m.expanded[entry.Group] {
			marker = "▾"
		}
		header := lipgloss.NewStyle().Foreground(theme.Lavender()).Bold(true)
		return header.Render(fmt.Sprintf("%s %s", marker, entry.Group))
	case registry.CatalogArtifact:
		id := lipgloss.NewStyle().Foreground(theme.Green())
		typ := lipgloss.NewStyle().Foreground(theme.Peach())
		return lipgloss.JoinHorizontal(
			lipgloss.Left,
			id.Render(entry.Artifact),
			typ.Render(fmt.Sprintf("<%s>", entry.Type)),
		)
	default:
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Render(entry.Name)
	}
}

func (m *Model) renderTopBar() string {
	return lipgloss.NewStyle().
		Foreground(theme.Subtext1()).
		Padding(0, 1).
		Render("Artifacts")
}
