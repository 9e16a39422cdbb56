package domain

import (
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders starred folders by name using locale-aware comparison.
// It is safe for concurrent use.
type Collator struct {
	mu sync.Mutex
	c  *collate.Collator
}

// NewCollator returns a collator for the given BCP 47 language tag,
// falling back to English when the tag cannot be parsed
func NewCollator(lang string) *Collator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Collator{c: collate.New(tag)}
}

// Compare compares two folders by name, then by path so the order is
// total for a fixed collection
func (c *Collator) Compare(a, b StarredFolder) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compare(a, b)
}

func (c *Collator) compare(a, b StarredFolder) int {
	if n := c.c.CompareString(a.Name, b.Name); n != 0 {
		return n
	}
	if a.Path < b.Path {
		return -1
	}
	if a.Path > b.Path {
		return 1
	}
	return 0
}

// Sort returns a sorted copy of folders
func (c *Collator) Sort(folders []StarredFolder) []StarredFolder {
	c.mu.Lock()
	defer c.mu.Unlock()

	sorted := slices.Clone(folders)
	slices.SortStableFunc(sorted, c.compare)
	return sorted
}
