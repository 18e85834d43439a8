package workflow

import "fmt"

type versionAddPhase int

const (
	versionFilePick versionAddPhase = iota
	versionLabelInput
)

// VersionAdd drives the add-version flow: a local file, then a free
// text version label. The latest known version is only a hint; the
// server rejects duplicates with a conflict.
type VersionAdd struct {
	latest string
	phase  versionAddPhase

	file    string
	version string

	status Status
	reason string
}

func NewVersionAdd(latest string) *VersionAdd {
	return &VersionAdd{latest: latest}
}

func (w *VersionAdd) Step() Prompt {
	if w.phase == versionLabelInput {
		prompt := Prompt{Kind: PromptInput, Title: "Increment version"}
		if w.latest != "" {
			prompt.Description = fmt.Sprintf("Latest version: %s", w.latest)
			prompt.Placeholder = w.latest
		}
		return prompt
	}
	return Prompt{Kind: PromptFile, Title: "Select a file"}
}

func (w *VersionAdd) Advance(in Input) {
	if w.status != Running {
		return
	}
	if in.Canceled {
		w.abort("version creation aborted")
		return
	}

	switch w.phase {
	case versionFilePick:
		w.file = in.Value
		w.phase = versionLabelInput
	case versionLabelInput:
		if in.Value == "" {
			w.abort("no defined version")
			return
		}
		w.version = in.Value
		w.status = Committed
	}
}

func (w *VersionAdd) Status() Status {
	return w.status
}

func (w *VersionAdd) Reason() string {
	return w.reason
}

func (w *VersionAdd) File() string {
	return w.file
}

func (w *VersionAdd) Version() string {
	return w.version
}

func (w *VersionAdd) abort(reason string) {
	w.status = Aborted
	w.reason = reason
}
