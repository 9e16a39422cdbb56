package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *StateDB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "state.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestState_GetMissingKey(t *testing.T) {
	db := openTestDB(t)

	value, ok, err := db.Global().Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != nil {
		t.Errorf("expected missing key, got ok=%v value=%q", ok, value)
	}
}

func TestState_UpdateAndGet(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	st := db.Workspace([]string{"/ws"})

	if err := st.Update(ctx, "starredFolders", []byte(`[{"name":"a","path":"/a"}]`)); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := st.Update(ctx, "starredFolders", []byte(`[]`)); err != nil {
		t.Fatalf("second Update failed: %v", err)
	}

	value, ok, err := st.Get(ctx, "starredFolders")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(value) != "[]" {
		t.Errorf("expected last written value [], got %s", value)
	}

	keys, err := st.keys(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0] != "starredFolders" {
		t.Errorf("expected [starredFolders], got %v", keys)
	}
}

func TestState_ScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	first := db.Workspace([]string{"/ws/one"})
	second := db.Workspace([]string{"/ws/two"})
	global := db.Global()

	first.Update(ctx, "k", []byte("one"))
	global.Update(ctx, "k", []byte("global"))

	if _, ok, _ := second.Get(ctx, "k"); ok {
		t.Error("second workspace sees first workspace's key")
	}
	if v, _, _ := global.Get(ctx, "k"); string(v) != "global" {
		t.Errorf("expected global value, got %s", v)
	}

	scopes, err := db.scopes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(scopes) != 2 {
		t.Errorf("expected 2 scopes with state, got %v", scopes)
	}
}

func TestState_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Global().Update(ctx, "folderStar.firstTime", []byte("false")); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	v, ok, err := db.Global().Get(ctx, "folderStar.firstTime")
	if err != nil || !ok || string(v) != "false" {
		t.Errorf("expected persisted false, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestWorkspaceScope(t *testing.T) {
	a := WorkspaceScope([]string{"/ws/b", "/ws/a"})
	b := WorkspaceScope([]string{"/ws/a", "/ws/b"})
	if a != b {
		t.Errorf("root order changed the scope: %s vs %s", a, b)
	}
	if a == WorkspaceScope([]string{"/ws/a"}) {
		t.Error("different root sets share a scope")
	}
	if a == GlobalScope {
		t.Error("workspace scope collides with global scope")
	}
}

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if err := db.Global().Update(ctx, "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := db.Global().Get(ctx, "k"); !ok || string(v) != "v" {
		t.Errorf("expected v, got %q", v)
	}
}
