package application

import "folderstar/internal/domain"

// Re-export domain types for use by adapters
type (
	StarredFolder = domain.StarredFolder
	Root          = domain.Root
)

// Context keys published through ports.ContextSetter
const (
	ContextHasStarredFolders = "folderStar.hasStarredFolders"
	ContextIsStarred         = "folderStar.isStarred"
)

// Collection keys in the state stores
const (
	KeyStarredFolders = "starredFolders"
	KeyFirstTime      = "folderStar.firstTime"
)

// NewRoots builds workspace roots from their paths
func NewRoots(paths []string) []domain.Root {
	roots := make([]domain.Root, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		roots = append(roots, domain.NewRoot(p))
	}
	return roots
}
