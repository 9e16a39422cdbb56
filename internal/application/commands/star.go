package commands

import (
	"context"
	"errors"
	"fmt"

	"folderstar/internal/application"
	"folderstar/internal/domain"
)

// StarResult contains the result of a star operation
type StarResult struct {
	Folder         domain.StarredFolder
	AlreadyStarred bool
	Message        string
}

// StarCommand stars a folder
type StarCommand struct {
	store  *application.StarStore
	Target string // Filesystem path or file:// URI
}

// NewStarCommand creates a new StarCommand
func NewStarCommand(store *application.StarStore, target string) *StarCommand {
	return &StarCommand{
		store:  store,
		Target: target,
	}
}

// Validate checks that the target names a filesystem location
func (c *StarCommand) Validate() error {
	_, err := application.ResolveTarget(c.Target)
	return err
}

// Execute runs the star command. Starring an already starred folder is not
// an error: the result reports it and nothing changes.
func (c *StarCommand) Execute(ctx context.Context) (*StarResult, error) {
	path, err := application.ResolveTarget(c.Target)
	if err != nil {
		return nil, err
	}

	folder, err := c.store.Add(ctx, path)
	if errors.Is(err, application.ErrAlreadyStarred) {
		existing, _ := c.store.Get(path)
		return &StarResult{
			Folder:         existing,
			AlreadyStarred: true,
			Message:        "Folder is already starred!",
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to star %s: %w", path, err)
	}

	return &StarResult{
		Folder:  *folder,
		Message: fmt.Sprintf("⭐ Starred folder: %s", folder.Name),
	}, nil
}
