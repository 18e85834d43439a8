package metas

import "github.com/flavono123/curio/internal/registry"

// root -> metas; metadata rows of the selected artifact version.
type SetEntriesMsg struct {
	Selection registry.Selection
	Entries   []registry.MetaEntry
}

// root -> metas
type ClearMsg struct{}
