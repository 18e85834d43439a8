package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/ui/catalog"
	"github.com/flavono123/curio/internal/ui/event"
	"github.com/flavono123/curio/internal/ui/kbar"
	"github.com/flavono123/curio/internal/ui/metas"
	"github.com/flavono123/curio/internal/ui/versions"
)

func stubModel() *mainModel {
	return &mainModel{
		keys:     newKeyMap(),
		catalog:  catalog.NewModel(),
		versions: versions.NewModel(),
		metas:    metas.NewModel(),
		kbar:     kbar.NewModel(nil),
	}
}

func TestSaveSearchWithoutStore(t *testing.T) {
	m := stubModel()
	m.criteria = registry.SearchCriteria{Attribute: "name", Value: "cat"}

	cmd := m.handleKeys(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, m.machine)
	assert.Nil(t, m.overlay)
	require.NotNil(t, cmd)
	status, ok := cmd().(event.SetStatusMsg)
	require.True(t, ok)
	assert.Contains(t, status.Message, "unavailable")
	assert.Equal(t, event.Warn, status.Status)
}

func TestKbarRestoresLastFocus(t *testing.T) {
	m := stubModel()
	m.setFocus(versionsView)

	cmd := m.handleKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.NotNil(t, cmd)
	assert.Equal(t, kbar.ShowMsg{}, cmd())
	assert.Equal(t, versionsView, m.lastState)

	m.setFocus(catalogView)
	m.handleMsg(event.RestoreLastSessionMsg{})
	assert.Equal(t, versionsView, m.state)
}

func TestStaleLoadsDropped(t *testing.T) {
	current := registry.Selection{Group: "pets", Artifact: "cat"}
	stale := registry.Selection{Group: "pets", Artifact: "dog"}

	t.Run("versions for a superseded selection", func(t *testing.T) {
		m := &mainModel{selection: current}
		cmd := m.handleMsg(versionsLoadedMsg{selection: stale, entries: []registry.VersionEntry{{Version: "1"}}})
		assert.Nil(t, cmd)
	})

	t.Run("versions for the live selection pass through", func(t *testing.T) {
		m := &mainModel{selection: current}
		cmd := m.handleMsg(versionsLoadedMsg{selection: current, entries: []registry.VersionEntry{{Version: "1"}}})
		require.NotNil(t, cmd)
		setMsg, ok := cmd().(versions.SetEntriesMsg)
		require.True(t, ok)
		assert.Equal(t, current, setMsg.Selection)
	})

	t.Run("metas for a superseded version", func(t *testing.T) {
		m := &mainModel{selection: current.WithVersion("2")}
		cmd := m.handleMsg(metasLoadedMsg{selection: current.WithVersion("1")})
		assert.Nil(t, cmd)
	})

	t.Run("metas for the live version pass through", func(t *testing.T) {
		pinned := current.WithVersion("2")
		m := &mainModel{selection: pinned}
		cmd := m.handleMsg(metasLoadedMsg{selection: pinned})
		require.NotNil(t, cmd)
		_, ok := cmd().(metas.SetEntriesMsg)
		assert.True(t, ok)
	})
}
