package filesystem

import (
	"os"

	"folderstar/internal/ports"
)

// FS implements ports.FileSystem on the local disk
type FS struct{}

// Ensure FS implements FileSystem
var _ ports.FileSystem = FS{}

// NewFS creates a local filesystem adapter
func NewFS() FS {
	return FS{}
}

// Exists reports whether path can be stat'ed. Any stat error counts as
// missing.
func (FS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
