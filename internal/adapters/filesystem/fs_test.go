package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFS_Exists(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "src")
	if err := os.Mkdir(folder, 0755); err != nil {
		t.Fatal(err)
	}

	fs := NewFS()
	if !fs.Exists(folder) {
		t.Errorf("expected %s to exist", folder)
	}
	if fs.Exists(filepath.Join(dir, "missing")) {
		t.Error("expected missing folder not to exist")
	}

	if err := os.Remove(folder); err != nil {
		t.Fatal(err)
	}
	if fs.Exists(folder) {
		t.Error("expected deleted folder not to exist")
	}
}
