package domain

import (
	"path/filepath"
	"strings"
)

// Root is a workspace root folder. Starred folders under a root record
// the root's name and are described relative to it.
type Root struct {
	Name string
	Path string
}

// NewRoot creates a root named after its last path segment
func NewRoot(path string) Root {
	return Root{Name: filepath.Base(path), Path: path}
}

// Contains reports whether path is the root itself or lies beneath it
func (r Root) Contains(path string) bool {
	if path == r.Path {
		return true
	}
	prefix := r.Path
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

// Describe returns path relative to the root, or the root name when path
// is the root itself
func (r Root) Describe(path string) string {
	rel, err := filepath.Rel(r.Path, path)
	if err != nil || rel == "." {
		return r.Name
	}
	return rel
}

// FindRoot returns the first root containing path, or nil
func FindRoot(roots []Root, path string) *Root {
	for i := range roots {
		if roots[i].Contains(path) {
			return &roots[i]
		}
	}
	return nil
}

// DescribePath returns path relative to its containing root when one is
// found, otherwise the absolute path unchanged
func DescribePath(roots []Root, path string) string {
	if root := FindRoot(roots, path); root != nil {
		return root.Describe(path)
	}
	return path
}
