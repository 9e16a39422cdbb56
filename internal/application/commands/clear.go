package commands

import (
	"context"
	"errors"
	"fmt"

	"folderstar/internal/application"
	"folderstar/internal/ports"
)

// ClearResult contains the result of a clear-all operation
type ClearResult struct {
	Cleared  int
	Declined bool
	Message  string
}

// ClearCommand removes every starred folder after confirmation
type ClearCommand struct {
	store     *application.StarStore
	confirmer ports.Confirmer
}

// NewClearCommand creates a new ClearCommand
func NewClearCommand(store *application.StarStore, confirmer ports.Confirmer) *ClearCommand {
	return &ClearCommand{
		store:     store,
		confirmer: confirmer,
	}
}

// Execute runs the clear command. A declined confirmation is reported in
// the result, not as an error.
func (c *ClearCommand) Execute(ctx context.Context) (*ClearResult, error) {
	n, err := c.store.Clear(ctx, c.confirmer)
	if errors.Is(err, application.ErrDeclined) {
		return &ClearResult{Declined: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clear starred folders: %w", err)
	}

	return &ClearResult{
		Cleared: n,
		Message: "All starred folders cleared!",
	}, nil
}
