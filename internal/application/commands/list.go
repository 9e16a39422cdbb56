package commands

import (
	"context"

	"folderstar/internal/application"
)

// ListCommand lists starred folders as display items, sorted by name
type ListCommand struct {
	view *application.StarredFoldersView
}

// NewListCommand creates a new ListCommand
func NewListCommand(view *application.StarredFoldersView) *ListCommand {
	return &ListCommand{view: view}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]application.DisplayItem, error) {
	return c.view.Children(nil), nil
}

// StatusResult reports whether a target is starred
type StatusResult struct {
	Path    string
	Starred bool
}

// StatusCommand checks whether a target is starred and publishes the
// selection flag
type StatusCommand struct {
	view   *application.StarredFoldersView
	Target string
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(view *application.StarredFoldersView, target string) *StatusCommand {
	return &StatusCommand{
		view:   view,
		Target: target,
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	path, err := application.ResolveTarget(c.Target)
	if err != nil {
		return nil, err
	}
	return &StatusResult{
		Path:    path,
		Starred: c.view.SelectionChanged(path),
	}, nil
}
