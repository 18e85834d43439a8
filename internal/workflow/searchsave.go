package workflow

import (
	"fmt"

	"github.com/flavono123/curio/internal/registry"
)

// SearchSave names the active criteria before it is persisted. A
// single input step; an empty name aborts.
type SearchSave struct {
	criteria registry.SearchCriteria

	name   string
	status Status
	reason string
}

func NewSearchSave(criteria registry.SearchCriteria) *SearchSave {
	return &SearchSave{criteria: criteria}
}

func (w *SearchSave) Step() Prompt {
	return Prompt{
		Kind:        PromptInput,
		Title:       "Save search as",
		Description: fmt.Sprintf("%s=%s", w.criteria.Attribute, w.criteria.Value),
	}
}

func (w *SearchSave) Advance(in Input) {
	if w.status != Running {
		return
	}
	if in.Canceled {
		w.abort("search save aborted")
		return
	}
	if in.Value == "" {
		w.abort("no defined name")
		return
	}
	w.name = in.Value
	w.status = Committed
}

func (w *SearchSave) Status() Status {
	return w.status
}

func (w *SearchSave) Reason() string {
	return w.reason
}

func (w *SearchSave) Name() string {
	return w.name
}

func (w *SearchSave) Criteria() registry.SearchCriteria {
	return w.criteria
}

func (w *SearchSave) abort(reason string) {
	w.status = Aborted
	w.reason = reason
}
