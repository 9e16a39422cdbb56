// Package bootstrap composes the core shared by every folderstar binary:
// the state database, the starred folder store and its view.
package bootstrap

import (
	"context"
	"fmt"

	"folderstar/internal/adapters/filesystem"
	"folderstar/internal/adapters/sqlite"
	"folderstar/internal/application"
	"folderstar/internal/config"
	"folderstar/internal/domain"
	"folderstar/internal/ports"
)

// Core is one composed instance of the store and view
type Core struct {
	Config     *config.Config
	DB         *sqlite.StateDB
	FS         ports.FileSystem
	Store      *application.StarStore
	View       *application.StarredFoldersView
	Onboarding *application.Onboarding
}

// Open opens the state database named by cfg and loads the starred
// folders of cfg.Roots. flags receives the derived context flags and may
// be nil.
func Open(ctx context.Context, cfg *config.Config, flags ports.ContextSetter) (*Core, error) {
	db, err := sqlite.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	store, err := application.NewStarStore(ctx, db.Workspace(cfg.Roots), application.StoreOptions{
		Roots:    application.NewRoots(cfg.Roots),
		Collator: domain.NewCollator(cfg.Language),
		Context:  flags,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	fs := filesystem.NewFS()
	return &Core{
		Config:     cfg,
		DB:         db,
		FS:         fs,
		Store:      store,
		View:       application.NewStarredFoldersView(store, fs, flags),
		Onboarding: application.NewOnboarding(db.Global()),
	}, nil
}

// Close releases the state database
func (c *Core) Close() error {
	return c.DB.Close()
}
