package commands

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"folderstar/internal/application"
	"folderstar/internal/ports"
)

type memState struct {
	values map[string][]byte
}

func (m *memState) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memState) Update(_ context.Context, key string, value []byte) error {
	m.values[key] = append([]byte(nil), value...)
	return nil
}

type fakeFS map[string]bool

func (f fakeFS) Exists(path string) bool { return f[path] }

type fakeRevealer struct {
	err      error
	revealed []string
}

func (r *fakeRevealer) Reveal(path string) error {
	if r.err != nil {
		return r.err
	}
	r.revealed = append(r.revealed, path)
	return nil
}

type fakeWindows struct {
	opened []string
}

func (w *fakeWindows) OpenWindow(path string) error {
	w.opened = append(w.opened, path)
	return nil
}

// scriptedConfirmer answers prompts in order and records them
type scriptedConfirmer struct {
	answers []bool
	asked   []ports.Prompt
}

func (c *scriptedConfirmer) Confirm(_ context.Context, p ports.Prompt) (bool, error) {
	c.asked = append(c.asked, p)
	if len(c.answers) == 0 {
		return false, nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func newStore(t *testing.T) (*application.StarStore, *memState) {
	t.Helper()
	state := &memState{values: make(map[string][]byte)}
	store, err := application.NewStarStore(context.Background(), state, application.StoreOptions{})
	if err != nil {
		t.Fatal(err)
	}
	return store, state
}

func TestStarCommand(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	dir := filepath.Join(t.TempDir(), "src")

	result, err := NewStarCommand(store, dir).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.AlreadyStarred {
		t.Error("first star reported as duplicate")
	}
	if result.Message != "⭐ Starred folder: src" {
		t.Errorf("unexpected message %q", result.Message)
	}

	result, err = NewStarCommand(store, "file://"+filepath.ToSlash(dir)).Execute(ctx)
	if err != nil {
		t.Fatalf("duplicate star must not fail: %v", err)
	}
	if !result.AlreadyStarred || result.Message != "Folder is already starred!" {
		t.Errorf("expected duplicate notice, got %+v", result)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}

func TestStarCommand_KeepsPathAsGiven(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "surrounding spaces", target: filepath.Join(dir, " padded "), want: filepath.Join(dir, " padded ")},
		{name: "relative name with colon", target: "notes:v2", want: filepath.Join(dir, "notes:v2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newStore(t)

			result, err := NewStarCommand(store, tt.target).Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if result.Folder.Path != tt.want {
				t.Errorf("stored path %q, want %q", result.Folder.Path, tt.want)
			}
			if !store.IsStarred(tt.want) {
				t.Errorf("expected %q to be starred", tt.want)
			}
		})
	}
}

func TestStarCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr bool
		errMsg  string
	}{
		{name: "absolute path", target: "/repo/src"},
		{name: "file URI", target: "file:///repo/src"},
		{name: "empty target", target: "", wantErr: true, errMsg: "target is required"},
		{name: "non-file scheme", target: "vscode-remote://host/repo", wantErr: true, errMsg: "not a filesystem location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&StarCommand{Target: tt.target}).Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUnstarAndRemoveCommands(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	store.Add(ctx, "/repo/src")
	store.Add(ctx, "/repo/docs")

	result, err := NewUnstarCommand(store, "/repo/src").Execute(ctx)
	if err != nil {
		t.Fatalf("unstar failed: %v", err)
	}
	if !result.Removed || result.Message != "Removed starred folder: src" {
		t.Errorf("unexpected unstar result %+v", result)
	}

	docs, _ := store.Get("/repo/docs")
	if _, err := NewRemoveCommand(store, docs).Execute(ctx); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", store.Len())
	}

	result, err = NewUnstarCommand(store, "/repo/never").Execute(ctx)
	if err != nil {
		t.Fatalf("unstar of absent path failed: %v", err)
	}
	if result.Removed {
		t.Error("expected Removed=false for absent path")
	}
}

func TestOpenCommand(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		exists      bool
		revealErr   error
		answers     []bool
		wantOutcome OpenOutcome
		wantPrompt  []ports.PromptKind
		wantStarred bool
		wantWindows int
		wantReveals int
	}{
		{
			name:        "existing folder is revealed",
			exists:      true,
			wantOutcome: OpenRevealed,
			wantStarred: true,
			wantReveals: 1,
		},
		{
			name:        "reveal fails, user opens new window",
			exists:      true,
			revealErr:   errors.New("no file manager"),
			answers:     []bool{true},
			wantOutcome: OpenNewWindow,
			wantPrompt:  []ports.PromptKind{ports.PromptOpenNewWindow},
			wantStarred: true,
			wantWindows: 1,
		},
		{
			name:        "reveal fails, user declines new window",
			exists:      true,
			revealErr:   errors.New("no file manager"),
			answers:     []bool{false},
			wantOutcome: OpenDeclined,
			wantPrompt:  []ports.PromptKind{ports.PromptOpenNewWindow},
			wantStarred: true,
		},
		{
			name:        "missing folder removed on confirmation",
			exists:      false,
			answers:     []bool{true},
			wantOutcome: OpenRemoved,
			wantPrompt:  []ports.PromptKind{ports.PromptRemoveMissing},
			wantStarred: false,
		},
		{
			name:        "missing folder kept when declined",
			exists:      false,
			answers:     []bool{false},
			wantOutcome: OpenDeclined,
			wantPrompt:  []ports.PromptKind{ports.PromptRemoveMissing},
			wantStarred: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newStore(t)
			folder, err := store.Add(ctx, "/repo/docs")
			if err != nil {
				t.Fatal(err)
			}

			revealer := &fakeRevealer{err: tt.revealErr}
			windows := &fakeWindows{}
			confirmer := &scriptedConfirmer{answers: tt.answers}
			deps := OpenDeps{
				Store:     store,
				FS:        fakeFS{"/repo/docs": tt.exists},
				Revealer:  revealer,
				Windows:   windows,
				Confirmer: confirmer,
			}

			result, err := NewOpenCommand(deps, *folder).Execute(ctx)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if result.Outcome != tt.wantOutcome {
				t.Errorf("expected outcome %s, got %s", tt.wantOutcome, result.Outcome)
			}
			if len(confirmer.asked) != len(tt.wantPrompt) {
				t.Fatalf("expected %d prompts, got %d", len(tt.wantPrompt), len(confirmer.asked))
			}
			for i, kind := range tt.wantPrompt {
				if confirmer.asked[i].Kind != kind {
					t.Errorf("prompt %d: expected kind %d, got %d", i, kind, confirmer.asked[i].Kind)
				}
			}
			if got := store.IsStarred("/repo/docs"); got != tt.wantStarred {
				t.Errorf("expected starred=%v, got %v", tt.wantStarred, got)
			}
			if len(windows.opened) != tt.wantWindows {
				t.Errorf("expected %d new windows, got %d", tt.wantWindows, len(windows.opened))
			}
			if len(revealer.revealed) != tt.wantReveals {
				t.Errorf("expected %d reveals, got %d", tt.wantReveals, len(revealer.revealed))
			}
		})
	}
}

func TestOpenCommand_MissingPromptMessage(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	folder, _ := store.Add(ctx, "/repo/docs")
	confirmer := &scriptedConfirmer{}

	deps := OpenDeps{Store: store, FS: fakeFS{}, Revealer: &fakeRevealer{}, Windows: &fakeWindows{}, Confirmer: confirmer}
	if _, err := NewOpenCommand(deps, *folder).Execute(ctx); err != nil {
		t.Fatal(err)
	}

	want := `Folder "docs" not found. Remove from starred folders?`
	if confirmer.asked[0].Message != want {
		t.Errorf("expected prompt %q, got %q", want, confirmer.asked[0].Message)
	}
	if confirmer.asked[0].Accept != "Remove" || confirmer.asked[0].Reject != "Cancel" {
		t.Errorf("unexpected choices %q/%q", confirmer.asked[0].Accept, confirmer.asked[0].Reject)
	}
}

func TestClearCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("declined leaves state byte-for-byte", func(t *testing.T) {
		store, state := newStore(t)
		store.Add(ctx, "/a")
		store.Add(ctx, "/b")
		before := string(state.values[application.KeyStarredFolders])

		result, err := NewClearCommand(store, ports.Answer(false)).Execute(ctx)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !result.Declined {
			t.Error("expected Declined=true")
		}
		if after := string(state.values[application.KeyStarredFolders]); after != before {
			t.Errorf("persisted state changed:\nbefore %s\nafter  %s", before, after)
		}
	})

	t.Run("accepted empties the collection", func(t *testing.T) {
		store, _ := newStore(t)
		store.Add(ctx, "/a")

		result, err := NewClearCommand(store, ports.Answer(true)).Execute(ctx)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if result.Cleared != 1 || result.Message != "All starred folders cleared!" {
			t.Errorf("unexpected result %+v", result)
		}
		if store.Len() != 0 {
			t.Errorf("expected empty store, got %d", store.Len())
		}
	})
}

func TestListRefreshAndStatusCommands(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	view := application.NewStarredFoldersView(store, fakeFS{"/x/zeta": true}, nil)
	store.Add(ctx, "/x/zeta")
	store.Add(ctx, "/x/alpha")
	<-view.Changes()

	items, err := NewListCommand(view).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].Label != "alpha" || items[0].State != application.StateMissing {
		t.Errorf("unexpected list %+v", items)
	}

	refreshed, err := NewRefreshCommand(view).Execute(ctx)
	if err != nil || refreshed.Message != "Starred folders refreshed!" {
		t.Errorf("unexpected refresh result %+v, %v", refreshed, err)
	}
	select {
	case <-view.Changes():
	default:
		t.Error("expected refresh to signal a change")
	}

	status, err := NewStatusCommand(view, "/x/zeta").Execute(ctx)
	if err != nil || !status.Starred {
		t.Errorf("expected /x/zeta to be starred, got %+v, %v", status, err)
	}
}
