package workflow

import "fmt"

type artifactDeletePhase int

const (
	deleteSoftConfirm artifactDeletePhase = iota
	deleteHardConfirm
)

// ArtifactDelete is the two-stage deletion confirmation: a soft yes/no
// followed by an explicit irreversibility acknowledgment. No DELETE
// leaves the machine unless both are affirmed.
type ArtifactDelete struct {
	target string
	phase  artifactDeletePhase
	status Status
	reason string
}

func NewArtifactDelete(target string) *ArtifactDelete {
	return &ArtifactDelete{target: target}
}

func (w *ArtifactDelete) Step() Prompt {
	if w.phase == deleteHardConfirm {
		return Prompt{
			Kind:  PromptConfirm,
			Title: "This action is irreversible, continue?",
		}
	}
	return Prompt{
		Kind:  PromptConfirm,
		Title: fmt.Sprintf("Are you sure to delete '%s'?", w.target),
	}
}

func (w *ArtifactDelete) Advance(in Input) {
	if w.status != Running {
		return
	}
	if in.Canceled || !in.Confirmed {
		w.abort("artifact deletion aborted")
		return
	}

	if w.phase == deleteSoftConfirm {
		w.phase = deleteHardConfirm
		return
	}
	w.status = Committed
}

func (w *ArtifactDelete) Status() Status {
	return w.status
}

func (w *ArtifactDelete) Reason() string {
	return w.reason
}

func (w *ArtifactDelete) abort(reason string) {
	w.status = Aborted
	w.reason = reason
}
