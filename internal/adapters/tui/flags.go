package tui

import (
	"sync"

	"folderstar/internal/ports"
)

// Flags holds the derived context flags published by the core. Views read
// them to decide what to show.
type Flags struct {
	mu     sync.RWMutex
	values map[string]bool
}

// Ensure Flags implements ContextSetter
var _ ports.ContextSetter = (*Flags)(nil)

// NewFlags creates an empty flag set
func NewFlags() *Flags {
	return &Flags{values: make(map[string]bool)}
}

// SetContext records a flag value
func (f *Flags) SetContext(key string, value bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Get returns a flag value; unset flags are false
func (f *Flags) Get(key string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[key]
}
