package registry

import (
	"fmt"
	"strings"
)

// Op names a registry endpoint family for BuildPath.
type Op int

const (
	OpDefault Op = iota // artifact content, version scoped unless "latest"
	OpMeta
	OpVersions
	OpGroup
	OpDelete
	OpSearch
	OpState
)

// Param is one query string pair. A slice keeps insertion order, which
// a map would not.
type Param struct {
	Key   string
	Value string
}

// BuildPath maps a selection and an operation to a registry-relative
// path. Pure; callers guarantee the selection carries the fields the
// op needs, an omission is a programming error.
func BuildPath(sel Selection, op Op, params ...Param) string {
	var path string
	switch op {
	case OpMeta:
		path = artifactPath(sel) + "/meta"
	case OpVersions:
		path = fmt.Sprintf("groups/%s/artifacts/%s/versions", sel.Group, sel.Artifact)
	case OpGroup:
		path = fmt.Sprintf("groups/%s/artifacts", sel.Group)
	case OpDelete:
		path = fmt.Sprintf("groups/%s/artifacts/%s", sel.Group, sel.Artifact)
	case OpSearch:
		path = "search/artifacts"
	case OpState:
		path = artifactPath(sel) + "/state"
	default:
		path = artifactPath(sel)
	}

	var query strings.Builder
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		if query.Len() == 0 {
			query.WriteByte('?')
		} else {
			query.WriteByte('&')
		}
		query.WriteString(p.Key)
		query.WriteByte('=')
		query.WriteString(p.Value)
	}

	return path + query.String()
}

func artifactPath(sel Selection) string {
	path := fmt.Sprintf("groups/%s/artifacts/%s", sel.Group, sel.Artifact)
	if sel.Pinned() {
		path += "/versions/" + sel.Version
	}
	return path
}
