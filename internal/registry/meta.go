package registry

import (
	"context"
	"fmt"
	"net/http"
	"sort"
)

// Metas is the third tier: the metadata document of the selected
// artifact or version.
type Metas struct {
	client *Client
}

func NewMetas(client *Client) *Metas {
	return &Metas{client: client}
}

// List fetches the meta document and flattens it into display rows,
// one per server-returned key in sorted key order. The labels and
// properties rows keep their raw values for on-demand expansion.
func (m *Metas) List(ctx context.Context, sel Selection) ([]MetaEntry, error) {
	res, err := m.client.Get(ctx, BuildPath(sel, OpMeta))
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := res.Decode(&doc); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]MetaEntry, 0, len(keys))
	for _, key := range keys {
		switch key {
		case "labels":
			entries = append(entries, MetaEntry{
				Kind:   MetaLabels,
				Key:    key,
				Labels: toStrings(doc[key]),
			})
		case "properties":
			entries = append(entries, MetaEntry{
				Kind:       MetaProperties,
				Key:        key,
				Properties: toStringMap(doc[key]),
			})
		default:
			entries = append(entries, MetaEntry{
				Kind:  MetaPlain,
				Key:   key,
				Value: stringify(doc[key]),
			})
		}
	}
	return entries, nil
}

// EditableMeta is the subset the edit workflow may touch. Everything
// else the server returns never round-trips through an edit.
type EditableMeta struct {
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Labels      []string          `json:"labels,omitempty"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// Field returns the current value of an editable text field.
func (e EditableMeta) Field(field string) string {
	switch field {
	case "name":
		return e.Name
	case "description":
		return e.Description
	}
	return ""
}

// Editable snapshots the editable fields of the current meta document.
func (m *Metas) Editable(ctx context.Context, sel Selection) (EditableMeta, error) {
	res, err := m.client.Get(ctx, BuildPath(sel, OpMeta))
	if err != nil {
		return EditableMeta{}, err
	}
	var editable EditableMeta
	err = res.Decode(&editable)
	return editable, err
}

// Update PUTs a merged editable document back to the meta path.
func (m *Metas) Update(ctx context.Context, sel Selection, merged EditableMeta) error {
	_, err := m.client.Request(ctx, BuildPath(sel, OpMeta), http.MethodPut, merged, nil)
	return err
}

// UpdateState PUTs a state transition, version scoped unless the
// selection is "latest".
func (m *Metas) UpdateState(ctx context.Context, sel Selection, state string) error {
	body := map[string]string{"state": state}
	_, err := m.client.Request(ctx, BuildPath(sel, OpState), http.MethodPut, body, nil)
	return err
}

// Merge lays one field's new value over a snapshot, shallow: the other
// editable fields pass through unchanged.
func Merge(snapshot EditableMeta, field string, value any) EditableMeta {
	switch field {
	case "name":
		if s, ok := value.(string); ok {
			snapshot.Name = s
		}
	case "description":
		if s, ok := value.(string); ok {
			snapshot.Description = s
		}
	case "labels":
		if labels, ok := value.([]string); ok {
			snapshot.Labels = labels
		}
	case "properties":
		if props, ok := value.(map[string]string); ok {
			snapshot.Properties = props
		}
	}
	return snapshot
}

// AddLabel appends without mutating the input slice.
func AddLabel(labels []string, label string) []string {
	out := make([]string, 0, len(labels)+1)
	out = append(out, labels...)
	return append(out, label)
}

// RemoveLabel drops the selected label, order preserving. Labels form
// a set so every equal entry goes.
func RemoveLabel(labels []string, label string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != label {
			out = append(out, l)
		}
	}
	return out
}

// SetProperty inserts or overwrites a key without mutating the input.
func SetProperty(props map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	out[key] = value
	return out
}

// RemoveProperty drops exactly the selected key.
func RemoveProperty(props map[string]string, key string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// PropertyKeys lists keys sorted, for deletion pickers.
func PropertyKeys(props map[string]string) []string {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// timestamps and counts come back as JSON numbers
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toStringMap(v any) map[string]string {
	items, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(items))
	for key, value := range items {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}
