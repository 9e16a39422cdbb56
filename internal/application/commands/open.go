package commands

import (
	"context"
	"fmt"

	"folderstar/internal/application"
	"folderstar/internal/domain"
	"folderstar/internal/ports"
)

// OpenOutcome describes what an open request ended up doing
type OpenOutcome int

const (
	OpenRevealed  OpenOutcome = iota // Shown in the file manager
	OpenNewWindow                    // Opened in a new editor window
	OpenRemoved                      // Missing folder removed after confirmation
	OpenDeclined                     // User declined; nothing changed
)

func (o OpenOutcome) String() string {
	switch o {
	case OpenRevealed:
		return "revealed"
	case OpenNewWindow:
		return "new window"
	case OpenRemoved:
		return "removed"
	case OpenDeclined:
		return "declined"
	default:
		return "unknown"
	}
}

// OpenResult contains the result of an open operation
type OpenResult struct {
	Folder  domain.StarredFolder
	Outcome OpenOutcome
	Message string
}

// OpenDeps groups the collaborators an open request needs
type OpenDeps struct {
	Store     *application.StarStore
	FS        ports.FileSystem
	Revealer  ports.Revealer
	Windows   ports.WindowOpener
	Confirmer ports.Confirmer
}

// OpenCommand reveals a starred folder, offering to remove it when it no
// longer exists and to open a new window when it cannot be revealed
type OpenCommand struct {
	deps   OpenDeps
	Folder domain.StarredFolder
}

// NewOpenCommand creates a new OpenCommand
func NewOpenCommand(deps OpenDeps, folder domain.StarredFolder) *OpenCommand {
	return &OpenCommand{
		deps:   deps,
		Folder: folder,
	}
}

// Validate checks that the entry has a path
func (c *OpenCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.Folder.Path)
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context) (*OpenResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.deps.FS.Exists(c.Folder.Path) {
		return c.offerRemoval(ctx)
	}

	if err := c.deps.Revealer.Reveal(c.Folder.Path); err == nil {
		return &OpenResult{
			Folder:  c.Folder,
			Outcome: OpenRevealed,
			Message: fmt.Sprintf("Revealed %s", c.Folder.Name),
		}, nil
	}

	return c.offerNewWindow(ctx)
}

func (c *OpenCommand) offerRemoval(ctx context.Context) (*OpenResult, error) {
	ok, err := c.deps.Confirmer.Confirm(ctx, ports.Prompt{
		Kind:    ports.PromptRemoveMissing,
		Message: fmt.Sprintf("Folder %q not found. Remove from starred folders?", c.Folder.Name),
		Accept:  "Remove",
		Reject:  "Cancel",
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return &OpenResult{Folder: c.Folder, Outcome: OpenDeclined}, nil
	}

	removed, err := removeStarred(ctx, c.deps.Store, c.Folder.Path)
	if err != nil {
		return nil, err
	}
	return &OpenResult{
		Folder:  c.Folder,
		Outcome: OpenRemoved,
		Message: removed.Message,
	}, nil
}

func (c *OpenCommand) offerNewWindow(ctx context.Context) (*OpenResult, error) {
	ok, err := c.deps.Confirmer.Confirm(ctx, ports.Prompt{
		Kind:    ports.PromptOpenNewWindow,
		Message: fmt.Sprintf("Open %q in new window?", c.Folder.Name),
		Accept:  "Open",
		Reject:  "Cancel",
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return &OpenResult{Folder: c.Folder, Outcome: OpenDeclined}, nil
	}

	if err := c.deps.Windows.OpenWindow(c.Folder.Path); err != nil {
		return nil, fmt.Errorf("failed to open %s in new window: %w", c.Folder.Path, err)
	}
	return &OpenResult{
		Folder:  c.Folder,
		Outcome: OpenNewWindow,
		Message: fmt.Sprintf("Opened %s in new window", c.Folder.Name),
	}, nil
}
