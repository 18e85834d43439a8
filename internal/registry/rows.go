package registry

import "sort"

// Row variants the three panes render. Each carries only what its tier
// needs; the Selection travels alongside, not inside.

type CatalogKind int

const (
	CatalogArtifact CatalogKind = iota
	CatalogGroup                // synthetic deduplicated group header
	CatalogNoContent            // sentinel for an empty filtered result
)

type CatalogEntry struct {
	Kind        CatalogKind
	Group       string
	Artifact    string
	Name        string
	Description string
	Type        string
	State       string
}

// NoContentLabel is the single sentinel row label for empty results.
const NoContentLabel = "No content"

type VersionEntry struct {
	Group     string
	Artifact  string
	Version   string
	Name      string
	Type      string
	State     string
	CreatedOn string
}

func (e VersionEntry) Selection() Selection {
	return Selection{Group: e.Group, Artifact: e.Artifact, Version: e.Version}
}

type MetaKind int

const (
	MetaPlain MetaKind = iota
	MetaLabels
	MetaProperties
)

// MetaEntry is one metadata row. Labels and properties rows are
// collapsible; their raw values ride along so children derive in
// memory without a re-fetch.
type MetaEntry struct {
	Kind       MetaKind
	Key        string
	Value      string
	Labels     []string
	Properties map[string]string
}

func (e MetaEntry) Expandable() bool {
	return e.Kind != MetaPlain
}

// ExpandMeta derives the child rows of a labels or properties group
// row. A label's displayed key is the label text itself, value blank.
func ExpandMeta(e MetaEntry) []MetaEntry {
	var children []MetaEntry
	switch e.Kind {
	case MetaLabels:
		for _, label := range e.Labels {
			children = append(children, MetaEntry{Kind: MetaPlain, Key: label})
		}
	case MetaProperties:
		keys := make([]string, 0, len(e.Properties))
		for key := range e.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			children = append(children, MetaEntry{Kind: MetaPlain, Key: key, Value: e.Properties[key]})
		}
	}
	return children
}
