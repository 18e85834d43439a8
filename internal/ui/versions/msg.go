package versions

import "github.com/flavono123/curio/internal/registry"

// root -> versions; the selected artifact's version rows. The
// Selection names the artifact the rows belong to so stale loads are
// droppable upstream.
type SetEntriesMsg struct {
	Selection registry.Selection
	Entries   []registry.VersionEntry
}

// root -> versions; clears the pane when no artifact is selected.
type ClearMsg struct{}
