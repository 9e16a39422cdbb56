package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"folderstar/internal/ports"
)

// newWindowFlags maps GUI editors to the flag that forces a new window
var newWindowFlags = map[string]string{
	"code":     "--new-window",
	"codium":   "--new-window",
	"cursor":   "--new-window",
	"subl":     "--new-window",
	"zed":      "--new",
	"idea":     "",
	"goland":   "",
	"windsurf": "--new-window",
}

// Opener implements ports.WindowOpener by launching the user's editor on a
// folder
type Opener struct {
	editor   string // Configured editor; empty falls back to the environment
	lookPath func(string) (string, error)
}

// Ensure Opener implements WindowOpener and EditorCommand
var (
	_ ports.WindowOpener  = (*Opener)(nil)
	_ ports.EditorCommand = (*Opener)(nil)
)

// NewOpener creates a new editor opener. editor may be empty.
func NewOpener(editor string) *Opener {
	return &Opener{
		editor:   editor,
		lookPath: exec.LookPath,
	}
}

// OpenWindow opens the folder in a new editor window and waits for the
// editor process to return
func (o *Opener) OpenWindow(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a folder in the editor
// This is useful for integrating with bubbletea's ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	fields := strings.Fields(o.findEditor())
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	name := fields[0]
	args := append([]string{}, fields[1:]...)
	if flag := newWindowFlags[filepath.Base(name)]; flag != "" && !hasArg(args, flag) {
		args = append(args, flag)
	}
	args = append(args, path)

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// IsTerminal reports whether the resolved editor runs inside the terminal
// (and so must take over the screen) rather than opening its own window
func (o *Opener) IsTerminal() bool {
	fields := strings.Fields(o.findEditor())
	if len(fields) == 0 {
		return false
	}
	_, gui := newWindowFlags[filepath.Base(fields[0])]
	return !gui
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if o.editor != "" {
		return o.editor
	}

	// Check $EDITOR first
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// Check $VISUAL
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// Try common editors, preferring ones that open real windows
	editors := []string{"code", "codium", "zed", "subl", "nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := o.lookPath(editor); err == nil {
			return path
		}
	}

	return ""
}

func hasArg(args []string, arg string) bool {
	for _, a := range args {
		if a == arg {
			return true
		}
	}
	return false
}
