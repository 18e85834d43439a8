package workflow

import (
	"fmt"

	"github.com/flavono123/curio/internal/registry"
)

type artifactAddPhase int

const (
	artifactGroupMode artifactAddPhase = iota
	artifactGroupNew
	artifactGroupPick
	artifactGroupConfirm
	artifactTypePick
	artifactIDInput
	artifactVersionInput
	artifactFilePick
	artifactSummary
)

const (
	groupModeNew      = "NEW"
	groupModeExisting = "EXISTING"
)

// ArtifactAdd drives artifact creation: new-or-existing group (an
// existing pick needs an extra confirmation), type, id, initial
// version, a local file, then a summary confirmation. The caller reads
// the file and POSTs after commit.
type ArtifactAdd struct {
	knownGroups []string
	phase       artifactAddPhase

	group   string
	typ     string
	id      string
	version string
	file    string

	status Status
	reason string
}

func NewArtifactAdd(knownGroups []string) *ArtifactAdd {
	return &ArtifactAdd{knownGroups: knownGroups}
}

func (w *ArtifactAdd) Step() Prompt {
	switch w.phase {
	case artifactGroupNew:
		return Prompt{Kind: PromptInput, Title: "New group id"}
	case artifactGroupPick:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose group",
			Options: w.knownGroups,
		}
	case artifactGroupConfirm:
		return Prompt{
			Kind:  PromptConfirm,
			Title: fmt.Sprintf("Add the artifact to the existing group '%s'?", w.group),
		}
	case artifactTypePick:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose artifact type",
			Options: registry.Types(),
		}
	case artifactIDInput:
		return Prompt{Kind: PromptInput, Title: "Artifact id"}
	case artifactVersionInput:
		return Prompt{Kind: PromptInput, Title: "Initial version", Placeholder: "1"}
	case artifactFilePick:
		return Prompt{Kind: PromptFile, Title: "Select a file"}
	case artifactSummary:
		return Prompt{
			Kind:        PromptConfirm,
			Title:       "Create artifact?",
			Description: fmt.Sprintf("%s/%s (%s) version %s from %s", w.group, w.id, w.typ, w.version, w.file),
		}
	default:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "New or existing group?",
			Options: []string{groupModeNew, groupModeExisting},
		}
	}
}

func (w *ArtifactAdd) Advance(in Input) {
	if w.status != Running {
		return
	}
	if in.Canceled {
		w.abort("artifact creation aborted")
		return
	}

	switch w.phase {
	case artifactGroupMode:
		if in.Value == groupModeExisting {
			if len(w.knownGroups) == 0 {
				w.abort("no existing groups")
				return
			}
			w.phase = artifactGroupPick
			return
		}
		w.phase = artifactGroupNew
	case artifactGroupNew:
		w.group = in.Value
		w.phase = artifactTypePick
	case artifactGroupPick:
		w.group = in.Value
		w.phase = artifactGroupConfirm
	case artifactGroupConfirm:
		if !in.Confirmed {
			w.abort("artifact creation aborted")
			return
		}
		w.phase = artifactTypePick
	case artifactTypePick:
		w.typ = in.Value
		w.phase = artifactIDInput
	case artifactIDInput:
		w.id = in.Value
		w.phase = artifactVersionInput
	case artifactVersionInput:
		w.version = in.Value
		w.phase = artifactFilePick
	case artifactFilePick:
		w.file = in.Value
		w.phase = artifactSummary
	case artifactSummary:
		if !in.Confirmed {
			w.abort("artifact creation aborted")
			return
		}
		w.status = Committed
	}
}

func (w *ArtifactAdd) Status() Status {
	return w.status
}

func (w *ArtifactAdd) Reason() string {
	return w.reason
}

// File is the chosen local path, valid once Committed.
func (w *ArtifactAdd) File() string {
	return w.file
}

// Spec returns the create call parameters sans body; the caller fills
// Body and ContentType from the picked file.
func (w *ArtifactAdd) Spec() registry.ArtifactSpec {
	return registry.ArtifactSpec{
		Group:   w.group,
		ID:      w.id,
		Type:    w.typ,
		Version: w.version,
	}
}

func (w *ArtifactAdd) abort(reason string) {
	w.status = Aborted
	w.reason = reason
}
