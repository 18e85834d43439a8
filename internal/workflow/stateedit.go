package workflow

import (
	"fmt"

	"github.com/flavono123/curio/internal/registry"
)

type stateEditPhase int

const (
	stateConfirmIntent stateEditPhase = iota
	stateChoose
	stateConfirmChoice
)

// StateEdit drives the state transition flow: confirm intent, choose a
// state, re-pick it to confirm. A mismatched re-pick aborts.
type StateEdit struct {
	target string
	phase  stateEditPhase
	chosen string
	status Status
	reason string
}

func NewStateEdit(target string) *StateEdit {
	return &StateEdit{target: target}
}

func (w *StateEdit) Step() Prompt {
	switch w.phase {
	case stateChoose:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Choose new artifact state",
			Options: registry.States(),
		}
	case stateConfirmChoice:
		return Prompt{
			Kind:    PromptSelect,
			Title:   "Confirm new artifact state",
			Options: registry.States(),
		}
	default:
		return Prompt{
			Kind:  PromptConfirm,
			Title: fmt.Sprintf("Edit the state of '%s'?", w.target),
		}
	}
}

func (w *StateEdit) Advance(in Input) {
	if w.status != Running {
		return
	}
	if in.Canceled {
		w.abort("state edition aborted")
		return
	}

	switch w.phase {
	case stateConfirmIntent:
		if !in.Confirmed {
			w.abort("state edition aborted")
			return
		}
		w.phase = stateChoose
	case stateChoose:
		w.chosen = in.Value
		w.phase = stateConfirmChoice
	case stateConfirmChoice:
		if in.Value != w.chosen {
			w.abort("state does not match confirmation state")
			return
		}
		w.status = Committed
	}
}

func (w *StateEdit) Status() Status {
	return w.status
}

func (w *StateEdit) Reason() string {
	return w.reason
}

// State is the confirmed choice, valid once Committed.
func (w *StateEdit) State() string {
	return w.chosen
}

func (w *StateEdit) abort(reason string) {
	w.status = Aborted
	w.reason = reason
}
