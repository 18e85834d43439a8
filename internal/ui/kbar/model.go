package kbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/store"
	"github.com/flavono123/curio/internal/ui/event"
	"github.com/flavono123/curio/internal/ui/theme"
)

const (
	KBAR_WIDTH_DIV                 = 3
	KBAR_SEARCH_RESULTS_MAX_HEIGHT = 10

	KBAR_SCROLL_STEP = 1
)

type stage uint

const (
	attributeStage stage = iota
	valuePickStage
	valueInputStage
)

// Model is the search palette: fuzzy-pick an attribute (or a saved
// search), then pick an enum value or type a free one. Submitting
// empty criteria clears the filter.
type Model struct {
	keys    keyMap
	visible bool
	style   lipgloss.Style

	stage     stage
	attribute string

	items         kbarItems
	input         textinput.Model
	searchResults searchResults
	srViewport    viewport.Model
	cursor        int

	store *store.Store
}

func NewModel(searchStore *store.Store) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search by..."
	ti.Focus()
	ti.SetCursor(0)
	ti.Prompt = "🔍 "
	ti.Width = 30

	m := &Model{
		keys:    newKeyMap(),
		visible: false,
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Lavender()),
		input:      ti,
		srViewport: viewport.New(0, 0),
		store:      searchStore,
	}

	m.items = m.attributeItems()
	m.setSearchResults(m.items)
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	prevInputValue := m.input.Value()

	im, iCmd := m.input.Update(msg)
	m.input = im
	cmds = append(cmds, iCmd)
	filtered := m.items.filter(m.input.Value())
	if prevInputValue != m.input.Value() {
		m.moveCursorTop(filtered)
	}

	switch msg := msg.(type) {
	case ShowMsg:
		m.setVisible(true)
		m.reset()

		cmds = append(cmds, m.input.Focus())
	case HideMsg:
		m.setVisible(false)
		m.reset()
		m.input.Blur()

	case tea.WindowSizeMsg:
		m.setViewSize(msg)
	case tea.KeyMsg:
		if m.Visible() {
			switch {
			case key.Matches(msg, m.keys.up):
				if m.cursor > 0 {
					m.cursor--
				} else {
					m.srViewport.ScrollUp(KBAR_SCROLL_STEP)
				}
				m.setSearchResults(filtered)
			case key.Matches(msg, m.keys.down):
				if m.cursor < min(len(filtered)-1, KBAR_SEARCH_RESULTS_MAX_HEIGHT-1) {
					m.cursor++
				} else {
					m.srViewport.ScrollDown(KBAR_SCROLL_STEP)
				}
				m.setSearchResults(filtered)
			case key.Matches(msg, m.keys.pick):
				cmds = append(cmds, m.pick(filtered))
			case key.Matches(msg, m.keys.hide):
				cmds = append(cmds, tea.Sequence(
					Hide,
					func() tea.Msg { return event.RestoreLastSessionMsg{} },
				))
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	inputStyle := lipgloss.NewStyle().Margin(0, 0, 1, 0)
	if m.stage == valueInputStage {
		return m.style.Render(inputStyle.Render(m.input.View()))
	}

	searchResult := strings.TrimSuffix(m.searchResults.string(m.srViewport.Width), "\n")
	m.srViewport.SetContent(searchResult)
	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			inputStyle.Render(m.input.View()),
			m.srViewport.View(),
		),
	)
}

func (m *Model) setVisible(visible bool) {
	m.visible = visible
}

func (m *Model) Visible() bool {
	return m.visible
}

func (m *Model) setViewSize(msg tea.WindowSizeMsg) {
	m.srViewport.Width = msg.Width / KBAR_WIDTH_DIV
	m.srViewport.Height = KBAR_SEARCH_RESULTS_MAX_HEIGHT
}

func (m *Model) reset() {
	m.stage = attributeStage
	m.attribute = ""
	m.items = m.attributeItems()
	m.input.Reset()
	m.input.Placeholder = "Search by..."
	m.cursor = 0
	m.setSearchResults(m.items)
	m.srViewport.SetYOffset(0)
}

func (m *Model) pick(filtered kbarItems) tea.Cmd {
	if m.stage == valueInputStage {
		criteria := registry.SearchCriteria{Attribute: m.attribute, Value: m.input.Value()}
		if criteria.Value == "" {
			criteria = registry.SearchCriteria{}
		}
		return search(criteria)
	}

	actualIndex := m.cursor + m.srViewport.YOffset
	if actualIndex < 0 || actualIndex >= len(filtered) {
		return nil
	}
	item := filtered[actualIndex]

	if m.stage == valuePickStage || item.saved {
		return search(registry.SearchCriteria{Attribute: item.attribute, Value: item.value})
	}

	m.attribute = item.attribute
	m.input.Reset()
	m.cursor = 0
	m.srViewport.SetYOffset(0)

	switch m.attribute {
	case "type":
		m.stage = valuePickStage
		m.items = enumItems(m.attribute, registry.Types())
	case "state":
		m.stage = valuePickStage
		m.items = enumItems(m.attribute, registry.States())
	default:
		m.stage = valueInputStage
		m.input.Placeholder = fmt.Sprintf("%s...", m.attribute)
	}
	m.setSearchResults(m.items)
	return nil
}

func search(criteria registry.SearchCriteria) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg { return event.SearchMsg{Criteria: criteria} },
		Hide,
	)
}

// attributeItems lists the searchable attributes then the saved
// searches beneath them.
func (m *Model) attributeItems() kbarItems {
	var items kbarItems
	for _, attribute := range registry.SearchAttributes() {
		items = append(items, kbarItem{label: attribute, attribute: attribute})
	}
	if m.store == nil {
		return items
	}
	for _, saved := range m.store.ListAll() {
		items = append(items, kbarItem{
			label:     fmt.Sprintf("%s (%s=%s)", saved.Name, saved.Criteria.Attribute, saved.Criteria.Value),
			attribute: saved.Criteria.Attribute,
			value:     saved.Criteria.Value,
			saved:     true,
		})
	}
	return items
}

func enumItems(attribute string, values []string) kbarItems {
	var items kbarItems
	for _, value := range values {
		items = append(items, kbarItem{label: value, attribute: attribute, value: value})
	}
	return items
}

func (m *Model) setSearchResults(items kbarItems) {
	var newSearchResults searchResults
	for index, item := range items {
		newSearchResults = append(newSearchResults, searchResult{
			Item:    item,
			Hovered: m.cursor == index-m.srViewport.YOffset,
		})
	}
	m.searchResults = newSearchResults
}

func (m *Model) moveCursorTop(items kbarItems) {
	m.cursor = 0
	m.setSearchResults(items)
}

// subcomponents(not model)
type kbarItem struct {
	label     string
	attribute string
	value     string
	saved     bool
}

type kbarItems []kbarItem

func (items kbarItems) filter(keyword string) kbarItems {
	if keyword == "" {
		return items
	}

	labels := make([]string, len(items))
	for index, item := range items {
		labels[index] = item.label
	}

	var filtered kbarItems
	for _, match := range fuzzy.Find(keyword, labels) {
		filtered = append(filtered, items[match.Index])
	}
	return filtered
}

type searchResult struct {
	Item    kbarItem
	Hovered bool
}

type searchResults []searchResult

func (i kbarItem) render(width int) string {
	l := lipgloss.NewStyle().
		MaxWidth(width).
		Padding(0, 0, 0, 1)
	label := i.label
	if i.saved {
		label = lipgloss.JoinHorizontal(
			lipgloss.Left,
			i.label,
			lipgloss.NewStyle().Foreground(theme.Subtext1()).Render(" saved"),
		)
	}
	return l.Render(label)
}

func (rs searchResults) string(width int) string {
	var result strings.Builder
	hovered := lipgloss.NewStyle().Background(theme.Surface0())
	for _, r := range rs {
		rendered := r.Item.render(width)
		if r.Hovered {
			rendered = hovered.Render(rendered)
		}
		result.WriteString(rendered + "\n")
	}
	return result.String()
}
