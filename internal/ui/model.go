package ui

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/curio/internal/config"
	"github.com/flavono123/curio/internal/log"
	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/store"
	"github.com/flavono123/curio/internal/ui/catalog"
	"github.com/flavono123/curio/internal/ui/event"
	"github.com/flavono123/curio/internal/ui/form"
	"github.com/flavono123/curio/internal/ui/kbar"
	"github.com/flavono123/curio/internal/ui/metas"
	"github.com/flavono123/curio/internal/ui/theme"
	"github.com/flavono123/curio/internal/ui/versions"
	"github.com/flavono123/curio/internal/workflow"
)

type sessionState uint

const (
	catalogView sessionState = iota
	versionsView
	metasView
)

type mainModel struct {
	state sessionState
	// pane focused before the kbar opened, restored on escape
	lastState sessionState
	keys      keyMap
	cfg       *config.Config

	catalogSvc  *registry.Catalog
	versionsSvc *registry.Versions
	metasSvc    *registry.Metas
	searchStore *store.Store

	catalog  *catalog.Model
	versions *versions.Model
	metas    *metas.Model
	kbar     *kbar.Model

	overlay *form.Model
	machine workflow.Machine

	selection registry.Selection
	criteria  registry.SearchCriteria

	previewing bool
	preview    viewport.Model

	status      string
	statusLevel event.Status

	width  int
	height int
}

func InitModel(cfg *config.Config) *mainModel {
	client := registry.NewClient(cfg.HTTP)

	searchStore, err := store.NewStore()
	if err != nil {
		log.Warn().Err(err).Msg("saved searches unavailable")
		searchStore = nil
	} else if err := searchStore.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load saved searches")
	}

	return &mainModel{
		state:       catalogView,
		keys:        newKeyMap(),
		cfg:         cfg,
		catalogSvc:  registry.NewCatalog(client, cfg.Search.Limit),
		versionsSvc: registry.NewVersions(client, cfg.Versions.Reverse),
		metasSvc:    registry.NewMetas(client),
		searchStore: searchStore,
		catalog:     catalog.NewModel(),
		versions:    versions.NewModel(),
		metas:       metas.NewModel(),
		kbar:        kbar.NewModel(searchStore),
		preview:     viewport.New(0, 0),
	}
}

func (m *mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadCatalog(""),
		m.kbar.Init(),
	)
}

func (m *mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.quit) {
		return m, tea.Quit
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.preview.Width = sizeMsg.Width - 2
		m.preview.Height = sizeMsg.Height - 2
	}

	if m.overlay != nil {
		return m.updateOverlay(msg)
	}
	if m.previewing {
		return m.updatePreview(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.kbar.Visible() {
			km, kCmd := m.kbar.Update(msg)
			m.kbar = km.(*kbar.Model)
			return m, kCmd
		}

		cmds = append(cmds, m.handleKeys(keyMsg))
		cmds = append(cmds, m.updateFocusedPane(keyMsg))
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, m.handleMsg(msg))

	// broadcast; pane Set msgs emitted above arrive through here
	cm, cCmd := m.catalog.Update(msg)
	m.catalog = cm.(*catalog.Model)
	cmds = append(cmds, cCmd)

	vm, vCmd := m.versions.Update(msg)
	m.versions = vm.(*versions.Model)
	cmds = append(cmds, vCmd)

	mm, mCmd := m.metas.Update(msg)
	m.metas = mm.(*metas.Model)
	cmds = append(cmds, mCmd)

	km, kCmd := m.kbar.Update(msg)
	m.kbar = km.(*kbar.Model)
	cmds = append(cmds, kCmd)

	return m, tea.Batch(cmds...)
}

func (m *mainModel) View() string {
	if m.previewing {
		return m.renderPreview()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.catalog.View(),
		m.versions.View(),
		m.metas.View(),
	)
	content := lipgloss.JoinVertical(lipgloss.Left,
		main,
		m.renderStatusBar(),
	)

	if m.kbar.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.kbar.View())
	}
	if m.overlay != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlay.View())
	}

	return content
}

func (m *mainModel) handleKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.tabView):
		m.cycleFocus()
	case key.Matches(msg, m.keys.showKbar):
		m.lastState = m.state
		m.catalog.Blur()
		m.versions.Blur()
		m.metas.Blur()
		return kbar.Show
	case key.Matches(msg, m.keys.addEntry):
		if m.state == catalogView {
			return m.startMachine(workflow.NewArtifactAdd(m.catalog.Groups()))
		}
		if m.selection.HasArtifact() {
			return m.prepareVersionAdd(m.selection)
		}
	case key.Matches(msg, m.keys.deleteArti):
		if m.selection.HasArtifact() {
			return m.startMachine(workflow.NewArtifactDelete(m.selection.String()))
		}
	case key.Matches(msg, m.keys.editMetas):
		if m.selection.HasArtifact() {
			return m.prepareMetaEdit(m.selection)
		}
	case key.Matches(msg, m.keys.editState):
		if m.selection.HasArtifact() {
			return m.startMachine(workflow.NewStateEdit(m.selection.String()))
		}
	case key.Matches(msg, m.keys.openDoc):
		if m.selection.HasArtifact() {
			return m.loadDocument(m.selection)
		}
	case key.Matches(msg, m.keys.refresh):
		cmds := []tea.Cmd{m.loadCatalog("")}
		if m.selection.HasArtifact() {
			cmds = append(cmds, m.loadVersions(m.selection), m.loadMetas(m.selection))
		}
		return tea.Batch(cmds...)
	case key.Matches(msg, m.keys.reverse):
		if m.selection.HasArtifact() {
			m.versionsSvc.ToggleReverse()
			return m.loadVersions(m.selection)
		}
	case key.Matches(msg, m.keys.saveSearch):
		if m.criteria.Empty() {
			return nil
		}
		if m.searchStore == nil {
			return setStatus("Saved searches unavailable.", event.Warn)
		}
		return m.startMachine(workflow.NewSearchSave(m.criteria))
	}
	return nil
}

func (m *mainModel) handleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			return notice(msg.err)
		}
		if msg.group == "" {
			return func() tea.Msg { return catalog.SetEntriesMsg{Entries: msg.entries} }
		}
		return func() tea.Msg { return catalog.SetGroupMsg{Group: msg.group, Entries: msg.entries} }
	case versionsLoadedMsg:
		if msg.err != nil {
			return notice(msg.err)
		}
		if msg.selection.Group != m.selection.Group || msg.selection.Artifact != m.selection.Artifact {
			return nil // selection moved on, stale
		}
		return func() tea.Msg { return versions.SetEntriesMsg{Selection: msg.selection, Entries: msg.entries} }
	case metasLoadedMsg:
		if msg.err != nil {
			return notice(msg.err)
		}
		if msg.selection != m.selection {
			return nil // stale
		}
		return func() tea.Msg { return metas.SetEntriesMsg{Selection: msg.selection, Entries: msg.entries} }
	case catalog.ExpandGroupMsg:
		return m.loadCatalog(msg.Group)
	case event.SelectArtifactMsg:
		m.selection = msg.Selection
		m.setFocus(versionsView)
		return tea.Batch(m.loadVersions(msg.Selection), m.loadMetas(msg.Selection))
	case event.SelectVersionMsg:
		m.selection = msg.Selection
		m.setFocus(metasView)
		return m.loadMetas(msg.Selection)
	case event.RestoreLastSessionMsg:
		m.setFocus(m.lastState)
	case event.SearchMsg:
		m.criteria = msg.Criteria
		m.selection = registry.Selection{}
		m.setFocus(catalogView)
		return tea.Batch(
			m.loadCatalog(""),
			func() tea.Msg { return versions.ClearMsg{} },
			func() tea.Msg { return metas.ClearMsg{} },
		)
	case documentLoadedMsg:
		return m.openDocument(msg)
	case editorFinishedMsg:
		if msg.err != nil {
			return notice(msg.err)
		}
	case machineReadyMsg:
		if msg.err != nil {
			return notice(msg.err)
		}
		return m.startMachine(msg.machine)
	case mutationDoneMsg:
		return m.finishMutation(msg)
	case event.SetStatusMsg:
		m.status = msg.Message
		m.statusLevel = msg.Status
		return event.ShowStatus()
	case event.HideStatusMsg:
		m.status = ""
	}
	return nil
}

func (m *mainModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if doneMsg, ok := msg.(form.DoneMsg); ok {
		machine := m.machine
		m.overlay = nil
		m.machine = nil

		if doneMsg.Status == workflow.Aborted {
			if doneMsg.Reason == "" {
				return m, nil
			}
			return m, setStatus(doneMsg.Reason, event.Info)
		}
		return m, m.commitMachine(machine)
	}

	om, oCmd := m.overlay.Update(msg)
	if o, ok := om.(*form.Model); ok {
		m.overlay = o
	}
	return m, oCmd
}

// commitMachine turns a committed workflow into its registry call.
func (m *mainModel) commitMachine(machine workflow.Machine) tea.Cmd {
	switch w := machine.(type) {
	case *workflow.ArtifactAdd:
		return m.createArtifact(w)
	case *workflow.VersionAdd:
		return m.addVersion(m.selection, w)
	case *workflow.ArtifactDelete:
		return m.deleteArtifact(m.selection)
	case *workflow.MetaEdit:
		return m.updateMetas(m.selection, w)
	case *workflow.StateEdit:
		return m.updateState(m.selection, w)
	case *workflow.SearchSave:
		return m.saveSearch(w)
	}
	return nil
}

func (m *mainModel) finishMutation(msg mutationDoneMsg) tea.Cmd {
	if msg.err != nil {
		return notice(msg.err)
	}

	cmds := []tea.Cmd{
		setStatus(msg.message, event.Info),
		m.loadCatalog(""),
	}

	m.selection = msg.selection
	if msg.selection.HasArtifact() {
		cmds = append(cmds,
			m.loadVersions(msg.selection),
			m.loadMetas(msg.selection),
		)
	} else {
		m.setFocus(catalogView)
		cmds = append(cmds,
			func() tea.Msg { return versions.ClearMsg{} },
			func() tea.Msg { return metas.ClearMsg{} },
		)
	}
	return tea.Batch(cmds...)
}

func (m *mainModel) openDocument(msg documentLoadedMsg) tea.Cmd {
	if msg.err != nil {
		return notice(msg.err)
	}

	if m.cfg.Preview.OpenAPI && msg.doc.Type == "OPENAPI" {
		m.previewing = true
		m.preview.SetContent(msg.doc.Body)
		m.preview.SetYOffset(0)
		return nil
	}

	path := filepath.Join(os.TempDir(), msg.doc.Name)
	if err := os.WriteFile(path, []byte(msg.doc.Body), 0o600); err != nil {
		return notice(err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return tea.ExecProcess(exec.Command(editor, path), func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *mainModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			m.previewing = false
			return m, nil
		}
	}

	pm, pCmd := m.preview.Update(msg)
	m.preview = pm
	return m, pCmd
}

func (m *mainModel) updateFocusedPane(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case catalogView:
		cm, cCmd := m.catalog.Update(msg)
		m.catalog = cm.(*catalog.Model)
		return cCmd
	case versionsView:
		vm, vCmd := m.versions.Update(msg)
		m.versions = vm.(*versions.Model)
		return vCmd
	default:
		mm, mCmd := m.metas.Update(msg)
		m.metas = mm.(*metas.Model)
		return mCmd
	}
}

func (m *mainModel) cycleFocus() {
	switch m.state {
	case catalogView:
		m.setFocus(versionsView)
	case versionsView:
		m.setFocus(metasView)
	default:
		m.setFocus(catalogView)
	}
}

func (m *mainModel) setFocus(state sessionState) {
	m.state = state
	m.catalog.Blur()
	m.versions.Blur()
	m.metas.Blur()
	switch state {
	case catalogView:
		m.catalog.Focus()
	case versionsView:
		m.versions.Focus()
	default:
		m.metas.Focus()
	}
}

func (m *mainModel) startMachine(machine workflow.Machine) tea.Cmd {
	m.machine = machine
	m.overlay = form.NewModel(machine)
	return m.overlay.Init()
}

func (m *mainModel) renderStatusBar() string {
	if m.status == "" {
		hint := lipgloss.NewStyle().Foreground(theme.Overlay0())
		return hint.Render(" / search · tab pane · a add · d delete · e metas · s state · o open · r refresh · R reverse")
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	switch m.statusLevel {
	case event.Error:
		style = style.Foreground(theme.Red())
	case event.Warn:
		style = style.Foreground(theme.Peach())
	default:
		style = style.Foreground(theme.Green())
	}
	return style.Render(m.status)
}

func (m *mainModel) renderPreview() string {
	border := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Lavender())
	return border.Render(m.preview.View())
}
