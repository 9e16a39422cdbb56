package tui

import (
	"context"
	"errors"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"folderstar/internal/ports"
)

// confirmRequestMsg asks the application model to show a confirmation
type confirmRequestMsg struct {
	prompt ports.Prompt
	reply  chan<- bool
}

// Prompter implements ports.Confirmer for commands running outside the
// bubbletea update loop. Each request is shown by the confirmation view
// and the caller blocks until it is answered or ctx is done.
type Prompter struct {
	requests chan confirmRequestMsg
}

// Ensure Prompter implements Confirmer
var _ ports.Confirmer = (*Prompter)(nil)

// NewPrompter creates a new Prompter
func NewPrompter() *Prompter {
	return &Prompter{requests: make(chan confirmRequestMsg)}
}

// Confirm shows prompt and waits for the answer
func (p *Prompter) Confirm(ctx context.Context, prompt ports.Prompt) (bool, error) {
	reply := make(chan bool, 1)

	select {
	case p.requests <- confirmRequestMsg{prompt: prompt, reply: reply}:
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// wait delivers the next confirmation request to the update loop
func (p *Prompter) wait() tea.Cmd {
	return func() tea.Msg {
		return <-p.requests
	}
}

// execRequestMsg asks the application model to hand the terminal to cmd
type execRequestMsg struct {
	cmd *exec.Cmd
}

// editorFinishedMsg reports the end of an editor process
type editorFinishedMsg struct {
	err error
}

// WindowLauncher implements ports.WindowOpener inside the TUI. The editor
// process runs through tea.ExecProcess so it never draws over the panel.
type WindowLauncher struct {
	editor   ports.EditorCommand
	requests chan execRequestMsg
}

// Ensure WindowLauncher implements WindowOpener
var _ ports.WindowOpener = (*WindowLauncher)(nil)

// NewWindowLauncher creates a launcher; editor may be nil
func NewWindowLauncher(editor ports.EditorCommand) *WindowLauncher {
	return &WindowLauncher{
		editor:   editor,
		requests: make(chan execRequestMsg, 1),
	}
}

// OpenWindow queues the editor process for path
func (w *WindowLauncher) OpenWindow(path string) error {
	if w.editor == nil {
		return errors.New("no editor configured")
	}
	cmd, err := w.editor.Command(path)
	if err != nil {
		return err
	}
	w.requests <- execRequestMsg{cmd: cmd}
	return nil
}

func (w *WindowLauncher) wait() tea.Cmd {
	return func() tea.Msg {
		return <-w.requests
	}
}
