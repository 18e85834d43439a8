package workflow

import (
	"fmt"

	"github.com/flavono123/curio/internal/registry"
)

type metaEditPhase int

const (
	metaChooseField metaEditPhase = iota
	metaEditText
	metaLabelAction
	metaLabelAdd
	metaLabelPick
	metaPropAction
	metaPropName
	metaPropValue
	metaPropPick
	metaConfirm
)

const (
	actionAdd    = "Add"
	actionDelete = "Delete"
)

// MetaEdit drives the metadata edit flow over a fetched snapshot of
// the editable fields. The outcome is the snapshot with exactly one
// field merged over it; untouched fields pass through unchanged.
type MetaEdit struct {
	snapshot registry.EditableMeta
	phase    metaEditPhase

	field    string
	text     string
	labels   []string
	props    map[string]string
	propName string

	status Status
	reason string
}

func NewMetaEdit(snapshot registry.EditableMeta) *MetaEdit {
	return &MetaEdit{snapshot: snapshot}
}

func (w *MetaEdit) Step() Prompt {
	switch w.phase {
	case metaEditText:
		return Prompt{
			Kind:  PromptInput,
			Title: fmt.Sprintf("Update the %s value", w.field),
			Value: w.snapshot.Field(w.field),
		}
	case metaLabelAction, metaPropAction:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose action",
			Options: []string{actionAdd, actionDelete},
		}
	case metaLabelAdd:
		return Prompt{Kind: PromptInput, Title: "Add label"}
	case metaLabelPick:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose label to delete",
			Options: w.snapshot.Labels,
		}
	case metaPropName:
		return Prompt{Kind: PromptInput, Title: "Add property name"}
	case metaPropValue:
		return Prompt{Kind: PromptInput, Title: "Add property value"}
	case metaPropPick:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose property to delete",
			Options: registry.PropertyKeys(w.snapshot.Properties),
		}
	case metaConfirm:
		return Prompt{Kind: PromptConfirm, Title: "Confirm the meta update?"}
	default:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose meta to edit",
			Options: registry.EditableFields(),
		}
	}
}

func (w *MetaEdit) Advance(in Input) {
	if w.status != Running {
		return
	}
	if in.Canceled {
		w.abort("meta edition aborted")
		return
	}

	switch w.phase {
	case metaChooseField:
		w.field = in.Value
		switch w.field {
		case "labels":
			w.phase = metaLabelAction
		case "properties":
			w.phase = metaPropAction
		default:
			w.phase = metaEditText
		}
	case metaEditText:
		w.text = in.Value
		w.phase = metaConfirm
	case metaLabelAction:
		if in.Value == actionDelete {
			if len(w.snapshot.Labels) == 0 {
				w.abort("no labels to delete")
				return
			}
			w.phase = metaLabelPick
			return
		}
		w.phase = metaLabelAdd
	case metaLabelAdd:
		w.labels = registry.AddLabel(w.snapshot.Labels, in.Value)
		w.phase = metaConfirm
	case metaLabelPick:
		w.labels = registry.RemoveLabel(w.snapshot.Labels, in.Value)
		w.phase = metaConfirm
	case metaPropAction:
		if in.Value == actionDelete {
			if len(w.snapshot.Properties) == 0 {
				w.abort("no properties to delete")
				return
			}
			w.phase = metaPropPick
			return
		}
		w.phase = metaPropName
	case metaPropName:
		w.propName = in.Value
		w.phase = metaPropValue
	case metaPropValue:
		w.props = registry.SetProperty(w.snapshot.Properties, w.propName, in.Value)
		w.phase = metaConfirm
	case metaPropPick:
		w.props = registry.RemoveProperty(w.snapshot.Properties, in.Value)
		w.phase = metaConfirm
	case metaConfirm:
		if !in.Confirmed {
			w.abort("meta edition aborted")
			return
		}
		w.status = Committed
	}
}

func (w *MetaEdit) Status() Status {
	return w.status
}

func (w *MetaEdit) Reason() string {
	return w.reason
}

// Merged lays the edited field over the snapshot, valid once
// Committed.
func (w *MetaEdit) Merged() registry.EditableMeta {
	switch w.field {
	case "labels":
		return registry.Merge(w.snapshot, w.field, w.labels)
	case "properties":
		return registry.Merge(w.snapshot, w.field, w.props)
	default:
		return registry.Merge(w.snapshot, w.field, w.text)
	}
}

func (w *MetaEdit) abort(reason string) {
	w.status = Aborted
	w.reason = reason
}
