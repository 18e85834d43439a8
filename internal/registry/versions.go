package registry

import (
	"context"
	"fmt"
	"net/http"
)

// Versions is the second tier: version history plus the artifact-level
// mutations that hang off it.
type Versions struct {
	client  *Client
	reverse bool
	lookups *lookupCache
}

func NewVersions(client *Client, reverse bool) *Versions {
	return &Versions{
		client:  client,
		reverse: reverse,
		lookups: newLookupCache(),
	}
}

func (v *Versions) Reversed() bool {
	return v.reverse
}

// ToggleReverse flips the display order flag and returns the new value.
func (v *Versions) ToggleReverse() bool {
	v.reverse = !v.reverse
	return v.reverse
}

// List returns the version history in creation order, reversed when
// the display flag is set.
func (v *Versions) List(ctx context.Context, sel Selection) ([]VersionEntry, error) {
	results, err := v.fetch(ctx, sel)
	if err != nil {
		return nil, err
	}

	entries := make([]VersionEntry, 0, len(results.Versions))
	for _, ver := range results.Versions {
		entries = append(entries, VersionEntry{
			Group:     sel.Group,
			Artifact:  sel.Artifact,
			Version:   ver.Version,
			Name:      ver.Name,
			Type:      ver.Type,
			State:     ver.State,
			CreatedOn: ver.CreatedOn,
		})
	}
	if v.reverse {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	return entries, nil
}

// Latest returns the most recently created version. Versioning is not
// necessarily semver or even predictable; the server response is
// ordered by creation date, so the last element is the latest.
func (v *Versions) Latest(ctx context.Context, sel Selection) (string, error) {
	if latest, ok := v.lookups.get(latestKey(sel)); ok {
		return latest, nil
	}
	results, err := v.fetch(ctx, sel)
	if err != nil {
		return "", err
	}
	if len(results.Versions) == 0 {
		return "", nil
	}
	latest := results.Versions[len(results.Versions)-1].Version
	v.lookups.set(latestKey(sel), latest)
	return latest, nil
}

func (v *Versions) fetch(ctx context.Context, sel Selection) (versionSearchResults, error) {
	var results versionSearchResults
	res, err := v.client.Get(ctx, BuildPath(sel, OpVersions))
	if err != nil {
		return results, err
	}
	err = res.Decode(&results)
	return results, err
}

// Add POSTs a new version. The label is free text; the server is
// authoritative about uniqueness and answers a conflict if violated.
func (v *Versions) Add(ctx context.Context, sel Selection, body []byte, contentType, version string) error {
	headers := map[string]string{
		"X-Registry-Version": version,
		"Content-Type":       contentType,
	}
	_, err := v.client.Request(ctx, BuildPath(sel, OpVersions), http.MethodPost, body, headers)
	if err != nil {
		return err
	}
	v.lookups.drop(latestKey(sel))
	return nil
}

// DeleteArtifact removes the whole artifact. Confirmations live in the
// workflow layer; by the time this runs the decision is final.
func (v *Versions) DeleteArtifact(ctx context.Context, sel Selection) error {
	_, err := v.client.Request(ctx, BuildPath(sel, OpDelete), http.MethodDelete, nil, nil)
	if err != nil {
		return err
	}
	v.lookups.drop(latestKey(sel), typeKey(sel))
	return nil
}

// ArtifactType reads the type from the meta document, cached per
// artifact for the session.
func (v *Versions) ArtifactType(ctx context.Context, sel Selection) (string, error) {
	if typ, ok := v.lookups.get(typeKey(sel)); ok {
		return typ, nil
	}
	res, err := v.client.Get(ctx, BuildPath(Selection{Group: sel.Group, Artifact: sel.Artifact}, OpMeta))
	if err != nil {
		return "", err
	}
	var meta struct {
		Type string `json:"type"`
	}
	if err := res.Decode(&meta); err != nil {
		return "", err
	}
	v.lookups.set(typeKey(sel), meta.Type)
	return meta.Type, nil
}

// Document is a materialized artifact version ready to hand to an
// editor or pager.
type Document struct {
	Name string
	Body string
	Type string
	Ext  string
}

// Open fetches the version body and its artifact type and infers a
// file extension. Structured JSON bodies are json regardless of type;
// otherwise the type decides.
func (v *Versions) Open(ctx context.Context, sel Selection) (Document, error) {
	sel = sel.OrLatest()
	res, err := v.client.Get(ctx, BuildPath(sel, OpDefault))
	if err != nil {
		return Document{}, err
	}
	typ, err := v.ArtifactType(ctx, sel)
	if err != nil {
		return Document{}, err
	}

	ext := "json"
	if !res.Structured() {
		ext = extensionFor(typ)
	}
	return Document{
		Name: fmt.Sprintf("%s--%s--%s.%s", sel.Group, sel.Artifact, sel.Version, ext),
		Body: res.Text(),
		Type: typ,
		Ext:  ext,
	}, nil
}

func extensionFor(artifactType string) string {
	switch artifactType {
	case "OPENAPI", "ASYNCAPI":
		return "yml"
	case "AVRO":
		return "avro"
	case "GRAPHQL":
		return "gql"
	case "XML", "XSD", "WSDL":
		return "xml"
	case "PROTOBUF":
		return "proto"
	case "KCONNECT", "JSON":
		return "json"
	default:
		return "txt"
	}
}

func latestKey(sel Selection) string {
	return "latest:" + sel.Group + "/" + sel.Artifact
}

func typeKey(sel Selection) string {
	return "type:" + sel.Group + "/" + sel.Artifact
}
