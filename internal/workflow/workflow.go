// Package workflow models the multi-step edit flows as explicit state
// machines. A machine asks one Prompt at a time and moves on Advance;
// a canceled input at any step aborts the whole flow. Machines never
// touch the network or the UI: the caller renders prompts, feeds
// answers back, and commits the outcome with exactly one write once
// the machine reports Committed.
package workflow

type PromptKind int

const (
	PromptSelect PromptKind = iota
	PromptInput
	PromptConfirm
	PromptFile
)

// Prompt is one question for the user.
type Prompt struct {
	Kind        PromptKind
	Title       string
	Description string
	Options     []string // PromptSelect
	Value       string   // seed for PromptInput
	Placeholder string
}

// Input is one answer. Canceled means the user escaped the prompt.
type Input struct {
	Value     string
	Confirmed bool // PromptConfirm
	Canceled  bool
}

func Answer(value string) Input {
	return Input{Value: value}
}

func Confirm(yes bool) Input {
	return Input{Confirmed: yes}
}

func Cancel() Input {
	return Input{Canceled: true}
}

type Status int

const (
	Running Status = iota
	Committed
	Aborted
)

// Machine is the common shape every flow implements.
type Machine interface {
	// Step returns the current prompt. Only valid while Running.
	Step() Prompt
	// Advance consumes one answer and transitions.
	Advance(in Input)
	Status() Status
	// Reason describes why the flow aborted, empty otherwise.
	Reason() string
}
