package ports

import "context"

// PromptKind identifies why the user is being asked to confirm
type PromptKind int

const (
	PromptClearAll PromptKind = iota
	PromptRemoveMissing
	PromptOpenNewWindow
)

// Prompt is a yes/no question shown to the user
type Prompt struct {
	Kind    PromptKind
	Message string
	Accept  string // Label of the accepting choice, e.g. "Remove"
	Reject  string // Label of the rejecting choice, e.g. "Cancel"
	Modal   bool   // Destructive prompts are shown modally
}

// Confirmer asks the user to accept or reject a prompt. A dismissed
// prompt counts as rejected.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(ctx context.Context, p Prompt) (bool, error)

// Confirm calls f
func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) (bool, error) {
	return f(ctx, p)
}

// Answer returns a Confirmer that always gives the same answer. Front ends
// that collect the answer up front (a --yes flag, a tool argument) use it.
func Answer(accept bool) Confirmer {
	return ConfirmFunc(func(context.Context, Prompt) (bool, error) {
		return accept, nil
	})
}
