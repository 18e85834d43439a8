package ui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/curio/internal/registry"
	"github.com/flavono123/curio/internal/workflow"
)

// Loaded messages carry the Selection (or group) they were fetched
// for; root drops any whose owner moved on before the reply landed.

type catalogLoadedMsg struct {
	group   string
	entries []registry.CatalogEntry
	err     error
}

type versionsLoadedMsg struct {
	selection registry.Selection
	entries   []registry.VersionEntry
	err       error
}

type metasLoadedMsg struct {
	selection registry.Selection
	entries   []registry.MetaEntry
	err       error
}

type documentLoadedMsg struct {
	doc registry.Document
	err error
}

type editorFinishedMsg struct {
	err error
}

// machineReadyMsg hands root a machine whose seed needed a fetch.
type machineReadyMsg struct {
	machine workflow.Machine
	err     error
}

type mutationDoneMsg struct {
	message   string
	selection registry.Selection
	err       error
}

func (m *mainModel) loadCatalog(group string) tea.Cmd {
	criteria := m.criteria
	return func() tea.Msg {
		entries, err := m.catalogSvc.List(context.Background(), group, criteria)
		return catalogLoadedMsg{group: group, entries: entries, err: err}
	}
}

func (m *mainModel) loadVersions(sel registry.Selection) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.versionsSvc.List(context.Background(), sel)
		return versionsLoadedMsg{selection: sel, entries: entries, err: err}
	}
}

func (m *mainModel) loadMetas(sel registry.Selection) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.metasSvc.List(context.Background(), sel)
		return metasLoadedMsg{selection: sel, entries: entries, err: err}
	}
}

func (m *mainModel) loadDocument(sel registry.Selection) tea.Cmd {
	return func() tea.Msg {
		doc, err := m.versionsSvc.Open(context.Background(), sel)
		return documentLoadedMsg{doc: doc, err: err}
	}
}

func (m *mainModel) prepareVersionAdd(sel registry.Selection) tea.Cmd {
	return func() tea.Msg {
		latest, err := m.versionsSvc.Latest(context.Background(), sel)
		if err != nil {
			return machineReadyMsg{err: err}
		}
		return machineReadyMsg{machine: workflow.NewVersionAdd(latest)}
	}
}

func (m *mainModel) prepareMetaEdit(sel registry.Selection) tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.metasSvc.Editable(context.Background(), sel)
		if err != nil {
			return machineReadyMsg{err: err}
		}
		return machineReadyMsg{machine: workflow.NewMetaEdit(snapshot)}
	}
}

func (m *mainModel) createArtifact(w *workflow.ArtifactAdd) tea.Cmd {
	spec := w.Spec()
	file := w.File()
	return func() tea.Msg {
		body, err := os.ReadFile(file)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		spec.Body = body
		spec.ContentType = registry.ContentTypeForFile(file)
		if err := m.catalogSvc.Create(context.Background(), spec); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{
			message:   "Artifact created.",
			selection: registry.Selection{Group: spec.Group, Artifact: spec.ID},
		}
	}
}

func (m *mainModel) addVersion(sel registry.Selection, w *workflow.VersionAdd) tea.Cmd {
	file := w.File()
	version := w.Version()
	return func() tea.Msg {
		body, err := os.ReadFile(file)
		if err != nil {
			return mutationDoneMsg{err: err}
		}
		contentType := registry.ContentTypeForFile(file)
		if err := m.versionsSvc.Add(context.Background(), sel, body, contentType, version); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{message: "Version added.", selection: sel}
	}
}

func (m *mainModel) deleteArtifact(sel registry.Selection) tea.Cmd {
	return func() tea.Msg {
		if err := m.versionsSvc.DeleteArtifact(context.Background(), sel); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{message: "Artifact deleted."}
	}
}

func (m *mainModel) updateMetas(sel registry.Selection, w *workflow.MetaEdit) tea.Cmd {
	merged := w.Merged()
	return func() tea.Msg {
		if err := m.metasSvc.Update(context.Background(), sel, merged); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{message: "Metas updated.", selection: sel}
	}
}

func (m *mainModel) updateState(sel registry.Selection, w *workflow.StateEdit) tea.Cmd {
	state := w.State()
	return func() tea.Msg {
		if err := m.metasSvc.UpdateState(context.Background(), sel, state); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{message: "State updated.", selection: sel}
	}
}

func (m *mainModel) saveSearch(w *workflow.SearchSave) tea.Cmd {
	name := w.Name()
	criteria := w.Criteria()
	return func() tea.Msg {
		if _, err := m.searchStore.Create(name, criteria); err != nil {
			return mutationDoneMsg{err: err}
		}
		if err := m.searchStore.Save(); err != nil {
			return mutationDoneMsg{err: err}
		}
		return mutationDoneMsg{message: "Search saved.", selection: m.selection}
	}
}
