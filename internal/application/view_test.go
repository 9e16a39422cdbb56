package application

import (
	"context"
	"testing"

	"folderstar/internal/domain"
)

func TestStarredFoldersView_Render(t *testing.T) {
	store := newTestStore(t, newMemState(), "/ws")
	fs := fakeFS{"/ws/src/app": true}
	view := NewStarredFoldersView(store, fs, nil)

	t.Run("existing folder", func(t *testing.T) {
		f := domain.StarredFolder{Name: "app", Path: "/ws/src/app", WorkspaceFolder: "ws"}
		item := view.Render(f)

		if item.State != StateOK {
			t.Errorf("expected state OK, got %s", item.State)
		}
		if item.Label != "app" {
			t.Errorf("expected label app, got %s", item.Label)
		}
		if item.Description != "src/app" {
			t.Errorf("expected description src/app, got %s", item.Description)
		}
		if item.Tooltip != "/ws/src/app" {
			t.Errorf("expected tooltip /ws/src/app, got %s", item.Tooltip)
		}
		if item.Icon != IconFolder {
			t.Errorf("expected folder icon, got %s", item.Icon)
		}
		if item.Command == nil || item.Command.ID != OpenFolderActionID {
			t.Fatalf("expected open action, got %+v", item.Command)
		}
		if item.Command.Folder.Path != f.Path {
			t.Errorf("open action targets %s, want %s", item.Command.Folder.Path, f.Path)
		}
		if item.ContextValue != ContextValueStarredFolder {
			t.Errorf("expected context value %s, got %s", ContextValueStarredFolder, item.ContextValue)
		}
	})

	t.Run("missing folder", func(t *testing.T) {
		f := domain.StarredFolder{Name: "gone", Path: "/ws/gone"}
		item := view.Render(f)

		if item.State != StateMissing {
			t.Errorf("expected state MISSING, got %s", item.State)
		}
		if item.Description != NotFoundDescription {
			t.Errorf("expected description %q, got %q", NotFoundDescription, item.Description)
		}
		if item.Tooltip != "/ws/gone (Folder not found)" {
			t.Errorf("unexpected tooltip %q", item.Tooltip)
		}
		if item.Command != nil {
			t.Errorf("expected no default action, got %+v", item.Command)
		}
		if item.Icon != IconWarning {
			t.Errorf("expected warning icon, got %s", item.Icon)
		}
	})

	t.Run("outside roots uses absolute path", func(t *testing.T) {
		fs["/opt/tools"] = true
		item := view.Render(domain.StarredFolder{Name: "tools", Path: "/opt/tools"})
		if item.Description != "/opt/tools" {
			t.Errorf("expected absolute description, got %s", item.Description)
		}
	})

	t.Run("root itself uses root name", func(t *testing.T) {
		fs["/ws"] = true
		item := view.Render(domain.StarredFolder{Name: "ws", Path: "/ws"})
		if item.Description != "ws" {
			t.Errorf("expected description ws, got %s", item.Description)
		}
	})
}

func TestStarredFoldersView_StateIsNotCached(t *testing.T) {
	store := newTestStore(t, newMemState())
	fs := fakeFS{"/a": true}
	view := NewStarredFoldersView(store, fs, nil)
	f := domain.StarredFolder{Name: "a", Path: "/a"}

	if view.Render(f).State != StateOK {
		t.Fatal("expected OK while the folder exists")
	}
	delete(fs, "/a")
	if view.Render(f).State != StateMissing {
		t.Error("expected MISSING on the next render after deletion")
	}
}

func TestStarredFoldersView_ChildrenIsFlat(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemState())
	view := NewStarredFoldersView(store, fakeFS{}, nil)

	store.Add(ctx, "/b/beta")
	store.Add(ctx, "/a/alpha")

	root := view.Children(nil)
	if len(root) != 2 {
		t.Fatalf("expected 2 root items, got %d", len(root))
	}
	if root[0].Label != "alpha" || root[1].Label != "beta" {
		t.Errorf("expected [alpha beta], got [%s %s]", root[0].Label, root[1].Label)
	}

	for _, item := range root {
		f := item.Folder
		if children := view.Children(&f); len(children) != 0 {
			t.Errorf("expected no children under %s, got %d", f.Name, len(children))
		}
	}
}

func TestStarredFoldersView_SelectionChanged(t *testing.T) {
	ctx := context.Background()
	flags := recordingContext{}
	store := newTestStore(t, newMemState())
	view := NewStarredFoldersView(store, fakeFS{}, flags)
	store.Add(ctx, "/repo/src")

	if !view.SelectionChanged("/repo/src") || !flags[ContextIsStarred] {
		t.Error("expected isStarred=true for starred selection")
	}
	if view.SelectionChanged("file:///repo/docs") || flags[ContextIsStarred] {
		t.Error("expected isStarred=false for unstarred selection")
	}

	flags[ContextIsStarred] = true
	view.SelectionChanged("vscode-remote://ssh-remote+box/repo")
	if !flags[ContextIsStarred] {
		t.Error("non-filesystem selection must leave the flag untouched")
	}
}

func TestStarredFoldersView_HandleDeleted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemState())
	view := NewStarredFoldersView(store, fakeFS{}, nil)
	store.Add(ctx, "/repo/docs")
	<-view.Changes()

	if view.HandleDeleted("/repo/other") {
		t.Error("expected no refresh for an unstarred path")
	}
	select {
	case <-view.Changes():
		t.Error("unexpected change signal for unstarred path")
	default:
	}

	if !view.HandleDeleted("/repo/docs") {
		t.Error("expected refresh for a starred path")
	}
	select {
	case <-view.Changes():
	default:
		t.Error("expected change signal after deleting a starred path")
	}
}

func TestScenario_StarDeleteOpenRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, newMemState(), "/repo")
	fs := fakeFS{"/repo/src": true, "/repo/docs": true}
	view := NewStarredFoldersView(store, fs, nil)

	store.Add(ctx, "/repo/src")
	store.Add(ctx, "/repo/docs")
	store.Add(ctx, "/repo/src")

	list := store.List()
	if len(list) != 2 || list[0].Name != "docs" || list[1].Name != "src" {
		t.Fatalf("expected [docs src], got %v", list)
	}

	delete(fs, "/repo/docs")
	docs := view.Render(list[0])
	if docs.State != StateMissing {
		t.Fatalf("expected docs to be MISSING, got %s", docs.State)
	}

	// Open on a missing entry offers removal; the user confirms
	if _, err := store.Remove(ctx, docs.Folder.Path); err != nil {
		t.Fatal(err)
	}
	list = store.List()
	if len(list) != 1 || list[0].Name != "src" {
		t.Errorf("expected [src], got %v", list)
	}
}
