package catalog

import "github.com/flavono123/curio/internal/registry"

// root -> catalog; the top tier rows, resets folding.
type SetEntriesMsg struct {
	Entries []registry.CatalogEntry
}

// root -> catalog; one group's artifact rows.
type SetGroupMsg struct {
	Group   string
	Entries []registry.CatalogEntry
}

// catalog -> root; an expanded group needs its artifacts fetched.
type ExpandGroupMsg struct {
	Group string
}
