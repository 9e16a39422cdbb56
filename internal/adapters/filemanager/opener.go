package filemanager

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"folderstar/internal/ports"
)

// Opener implements ports.Revealer by handing a file:// URI to the
// system file manager
type Opener struct {
	command []string // Custom reveal command; the URI is appended
	goos    string
	run     func(*exec.Cmd) error
}

// Ensure Opener implements Revealer
var _ ports.Revealer = (*Opener)(nil)

// NewOpener creates a file manager opener. command overrides the platform
// default (e.g. "nautilus --select"); empty uses the default.
func NewOpener(command string) *Opener {
	return &Opener{
		command: strings.Fields(command),
		goos:    runtime.GOOS,
		run:     (*exec.Cmd).Run,
	}
}

// Reveal shows the folder in the file manager
func (o *Opener) Reveal(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	if err := o.run(cmd); err != nil {
		return fmt.Errorf("failed to reveal %s: %w", path, err)
	}
	return nil
}

// Command returns the exec.Cmd that reveals path
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	uri := BuildURI(path)

	if len(o.command) > 0 {
		args := append(o.command[1:len(o.command):len(o.command)], uri)
		return exec.Command(o.command[0], args...), nil
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", uri), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", uri), nil
	case "windows":
		return exec.Command("explorer", filepath.FromSlash(path)), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// BuildURI constructs the file:// URI for an absolute path
func BuildURI(path string) string {
	slashed := filepath.ToSlash(path)
	// Windows drive paths need a leading slash: file:///C:/...
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String()
}
