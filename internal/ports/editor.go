package ports

import "os/exec"

// EditorCommand builds the process that opens a folder in a new editor
// window. Front ends that own the terminal run it themselves (for example
// through bubbletea's ExecProcess) instead of calling WindowOpener.
type EditorCommand interface {
	Command(path string) (*exec.Cmd, error)
}
