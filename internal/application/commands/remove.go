package commands

import (
	"context"

	"folderstar/internal/application"
	"folderstar/internal/domain"
)

// RemoveCommand removes a starred folder entry. Invoking it is the
// confirmation, so it never prompts.
type RemoveCommand struct {
	store  *application.StarStore
	Folder domain.StarredFolder
}

// NewRemoveCommand creates a new RemoveCommand
func NewRemoveCommand(store *application.StarStore, folder domain.StarredFolder) *RemoveCommand {
	return &RemoveCommand{
		store:  store,
		Folder: folder,
	}
}

// Validate checks that the entry has a path
func (c *RemoveCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.Folder.Path)
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context) (*UnstarResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return removeStarred(ctx, c.store, c.Folder.Path)
}
