package editor

import (
	"errors"
	"strings"
	"testing"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		editor   string
		wantArgs string
	}{
		{name: "vscode gets new window flag", editor: "code", wantArgs: "code --new-window /repo/src"},
		{name: "flag not duplicated", editor: "code --new-window", wantArgs: "code --new-window /repo/src"},
		{name: "zed uses its own flag", editor: "/usr/bin/zed", wantArgs: "/usr/bin/zed --new /repo/src"},
		{name: "terminal editor", editor: "nvim", wantArgs: "nvim /repo/src"},
		{name: "editor with arguments", editor: "emacsclient -c", wantArgs: "emacsclient -c /repo/src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewOpener(tt.editor).Command("/repo/src")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Join(cmd.Args, " "); got != tt.wantArgs {
				t.Errorf("args = %q, want %q", got, tt.wantArgs)
			}
		})
	}
}

func TestOpener_FallsBackToEnvironment(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", "code")

	cmd, err := NewOpener("").Command("/repo")
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Args[0] != "vim" {
		t.Errorf("expected $EDITOR to win, got %s", cmd.Args[0])
	}
}

func TestOpener_NoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	o := NewOpener("")
	o.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	if _, err := o.Command("/repo"); err == nil {
		t.Error("expected error when no editor is available")
	}
	if o.IsTerminal() {
		t.Error("no editor must not report a terminal editor")
	}
}

func TestOpener_IsTerminal(t *testing.T) {
	if !NewOpener("vim").IsTerminal() {
		t.Error("vim should be a terminal editor")
	}
	if NewOpener("code").IsTerminal() {
		t.Error("code should open its own window")
	}
}
