package registry

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// Catalog is the top tier: a single search page turned into sorted,
// group-deduplicated rows.
type Catalog struct {
	client *Client
	limit  int
}

func NewCatalog(client *Client, limit int) *Catalog {
	return &Catalog{client: client, limit: limit}
}

// List fetches one page. With an empty group it lists group headers,
// one per distinct group in first-seen order; scoped to a group it
// lists that group's artifacts. Criteria the search endpoint supports
// go server side, the rest post-filter the fetched page only.
func (c *Catalog) List(ctx context.Context, group string, crit SearchCriteria) ([]CatalogEntry, error) {
	params := []Param{{Key: "group", Value: group}}
	if !crit.Empty() && crit.ServerSide() {
		// a group-scoped fetch already pins the group param; a second
		// one from group criteria would shadow the scope
		if group == "" || crit.Attribute != "group" {
			params = append(params, Param{Key: crit.Attribute, Value: crit.Value})
		}
	}
	params = append(params,
		Param{Key: "limit", Value: strconv.Itoa(c.limit)},
		Param{Key: "offset", Value: "0"},
	)

	res, err := c.client.Get(ctx, BuildPath(Selection{}, OpSearch, params...))
	if err != nil {
		return nil, err
	}
	var results artifactSearchResults
	if err := res.Decode(&results); err != nil {
		return nil, err
	}

	entries := []CatalogEntry{}
	seenGroups := []string{}
	for _, a := range results.Artifacts {
		if !crit.matches(a) {
			continue
		}
		kind := CatalogArtifact
		if group == "" {
			if containsString(seenGroups, a.GroupID) {
				continue
			}
			seenGroups = append(seenGroups, a.GroupID)
			kind = CatalogGroup
		}
		entries = append(entries, CatalogEntry{
			Kind:        kind,
			Group:       a.GroupID,
			Artifact:    a.ID,
			Name:        a.Name,
			Description: a.Description,
			Type:        a.Type,
			State:       a.State,
		})
	}

	if len(entries) == 0 {
		return []CatalogEntry{{Kind: CatalogNoContent, Name: NoContentLabel}}, nil
	}

	sortEntries(entries)
	return entries, nil
}

// sortEntries orders case-insensitively by group then artifact id; the
// search API itself only sorts by name or update date.
func sortEntries(entries []CatalogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a := strings.ToLower(entries[i].Group + entries[i].Artifact)
		b := strings.ToLower(entries[j].Group + entries[j].Artifact)
		return a < b
	})
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ArtifactSpec is everything a create call needs.
type ArtifactSpec struct {
	Group       string
	ID          string
	Type        string
	Version     string
	Body        []byte
	ContentType string
}

// Create POSTs a new artifact; ifExists=FAIL makes the server reject
// duplicates with a conflict instead of silently updating.
func (c *Catalog) Create(ctx context.Context, spec ArtifactSpec) error {
	path := BuildPath(Selection{Group: spec.Group}, OpGroup, Param{Key: "ifExists", Value: "FAIL"})
	headers := map[string]string{
		"Content-Type":            spec.ContentType,
		"X-Registry-ArtifactId":   spec.ID,
		"X-Registry-ArtifactType": spec.Type,
		"X-Registry-Version":      spec.Version,
	}
	_, err := c.client.Request(ctx, path, http.MethodPost, spec.Body, headers)
	return err
}
