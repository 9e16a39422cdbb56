package application

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"folderstar/internal/domain"
	"folderstar/internal/ports"
)

// StoreOptions configures a StarStore
type StoreOptions struct {
	Roots    []domain.Root       // Workspace roots used to resolve the containing group
	Collator *domain.Collator    // Ordering for List; English when nil
	Context  ports.ContextSetter // Receives derived flags; optional
}

// StarStore owns the collection of starred folders. Every read and write of
// the collection goes through it.
type StarStore struct {
	state    ports.StateStore
	roots    []domain.Root
	collator *domain.Collator
	context  ports.ContextSetter

	mu      sync.RWMutex
	folders []domain.StarredFolder // Insertion order, as persisted
	changes chan struct{}
}

// NewStarStore loads the collection from state. A missing key yields an
// empty collection.
func NewStarStore(ctx context.Context, state ports.StateStore, opts StoreOptions) (*StarStore, error) {
	collator := opts.Collator
	if collator == nil {
		collator = domain.NewCollator("en")
	}

	s := &StarStore{
		state:    state,
		roots:    opts.Roots,
		collator: collator,
		context:  opts.Context,
		changes:  make(chan struct{}, 1),
	}

	raw, ok, err := state.Get(ctx, KeyStarredFolders)
	if err != nil {
		return nil, fmt.Errorf("failed to load starred folders: %w", err)
	}
	if ok && len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.folders); err != nil {
			return nil, fmt.Errorf("failed to decode starred folders: %w", err)
		}
	}

	return s, nil
}

// Roots returns the workspace roots the store resolves groups against
func (s *StarStore) Roots() []domain.Root {
	return s.roots
}

// List returns all starred folders sorted by name
func (s *StarStore) List() []domain.StarredFolder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collator.Sort(s.folders)
}

// Len returns the number of starred folders
func (s *StarStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.folders)
}

// IsStarred reports whether path is starred. Paths are compared exactly.
func (s *StarStore) IsStarred(path string) bool {
	_, ok := s.Get(path)
	return ok
}

// Get returns the entry for path
func (s *StarStore) Get(path string) (domain.StarredFolder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(path)
	if i < 0 {
		return domain.StarredFolder{}, false
	}
	return s.folders[i], true
}

// Add stars path. Returns ErrAlreadyStarred, leaving the collection
// unchanged, if path is already starred.
func (s *StarStore) Add(ctx context.Context, path string) (*domain.StarredFolder, error) {
	s.mu.Lock()
	if s.indexOf(path) >= 0 {
		s.mu.Unlock()
		return nil, ErrAlreadyStarred
	}

	folder := domain.NewStarredFolder(path, domain.FindRoot(s.roots, path))
	next := append(slices.Clone(s.folders), folder)
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.NotifyChanged()
	return &folder, nil
}

// Remove unstars path. Removing a path that is not starred is not an
// error; removed reports whether an entry was dropped.
func (s *StarStore) Remove(ctx context.Context, path string) (removed bool, err error) {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.folders), func(f domain.StarredFolder) bool {
		return f.Path == path
	})
	removed = len(next) != len(s.folders)
	if err := s.commit(ctx, next); err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.mu.Unlock()

	s.NotifyChanged()
	return removed, nil
}

// Clear removes every starred folder after the user confirms. Returns
// ErrDeclined, with no state change, when confirmation is refused.
func (s *StarStore) Clear(ctx context.Context, confirmer ports.Confirmer) (int, error) {
	ok, err := confirmer.Confirm(ctx, ports.Prompt{
		Kind:    ports.PromptClearAll,
		Message: "Are you sure you want to clear all starred folders?",
		Accept:  "Yes",
		Reject:  "No",
		Modal:   true,
	})
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrDeclined
	}

	s.mu.Lock()
	count := len(s.folders)
	if err := s.commit(ctx, []domain.StarredFolder{}); err != nil {
		s.mu.Unlock()
		return 0, err
	}
	s.mu.Unlock()

	s.NotifyChanged()
	return count, nil
}

// NotifyChanged recomputes the derived "has starred folders" flag and
// signals subscribers that the collection may have changed
func (s *StarStore) NotifyChanged() {
	if s.context != nil {
		s.context.SetContext(ContextHasStarredFolders, s.Len() > 0)
	}
	select {
	case s.changes <- struct{}{}:
	default:
		// A signal is already pending; subscribers re-read current state
	}
}

// Changes returns the change channel. Signals coalesce: a subscriber that
// falls behind sees one pending signal, never a backlog.
func (s *StarStore) Changes() <-chan struct{} {
	return s.changes
}

// commit persists next and swaps it in. Caller holds s.mu.
func (s *StarStore) commit(ctx context.Context, next []domain.StarredFolder) error {
	if next == nil {
		next = []domain.StarredFolder{}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return &PersistenceError{Key: KeyStarredFolders, Err: err}
	}
	if err := s.state.Update(ctx, KeyStarredFolders, raw); err != nil {
		return &PersistenceError{Key: KeyStarredFolders, Err: err}
	}
	s.folders = next
	return nil
}

// indexOf returns the index of path in s.folders or -1. Caller holds s.mu.
func (s *StarStore) indexOf(path string) int {
	return slices.IndexFunc(s.folders, func(f domain.StarredFolder) bool {
		return f.Path == path
	})
}
