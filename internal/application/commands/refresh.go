package commands

import (
	"context"

	"folderstar/internal/application"
)

// RefreshResult contains the result of a refresh
type RefreshResult struct {
	Message string
}

// RefreshCommand re-renders the starred folders view
type RefreshCommand struct {
	view *application.StarredFoldersView
}

// NewRefreshCommand creates a new RefreshCommand
func NewRefreshCommand(view *application.StarredFoldersView) *RefreshCommand {
	return &RefreshCommand{view: view}
}

// Execute runs the refresh command
func (c *RefreshCommand) Execute(ctx context.Context) (*RefreshResult, error) {
	c.view.Refresh()
	return &RefreshResult{Message: "Starred folders refreshed!"}, nil
}
