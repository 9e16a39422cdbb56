package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"folderstar/internal/application"
)

// UnstarResult contains the result of an unstar or remove operation
type UnstarResult struct {
	Path    string
	Removed bool // False when the path was not starred
	Message string
}

// UnstarCommand unstars the folder identified by a filesystem target
type UnstarCommand struct {
	store  *application.StarStore
	Target string
}

// NewUnstarCommand creates a new UnstarCommand
func NewUnstarCommand(store *application.StarStore, target string) *UnstarCommand {
	return &UnstarCommand{
		store:  store,
		Target: target,
	}
}

// Validate checks that the target names a filesystem location
func (c *UnstarCommand) Validate() error {
	_, err := application.ResolveTarget(c.Target)
	return err
}

// Execute runs the unstar command
func (c *UnstarCommand) Execute(ctx context.Context) (*UnstarResult, error) {
	path, err := application.ResolveTarget(c.Target)
	if err != nil {
		return nil, err
	}
	return removeStarred(ctx, c.store, path)
}

// removeStarred is shared by unstar, remove and open-on-missing
func removeStarred(ctx context.Context, store *application.StarStore, path string) (*UnstarResult, error) {
	removed, err := store.Remove(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return &UnstarResult{
		Path:    path,
		Removed: removed,
		Message: fmt.Sprintf("Removed starred folder: %s", filepath.Base(path)),
	}, nil
}
