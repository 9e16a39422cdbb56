package application

import (
	"folderstar/internal/domain"
	"folderstar/internal/ports"
)

// ItemState is the existence state of a starred folder at render time
type ItemState int

const (
	StateOK ItemState = iota
	StateMissing
)

func (s ItemState) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateMissing:
		return "MISSING"
	default:
		return "UNKNOWN"
	}
}

// Icon names the glyph a front end draws next to an item
type Icon string

const (
	IconFolder  Icon = "folder"  // Drawn in yellow
	IconWarning Icon = "warning" // Drawn in the error color
)

// Display constants shared by every front end
const (
	ContextValueStarredFolder = "starredFolder"
	NotFoundDescription       = "Not found"
	NotFoundTooltipSuffix     = " (Folder not found)"
	OpenFolderActionID        = "folderStar.openFolder"
	OpenFolderActionTitle     = "Open Folder"
)

// Action is the default command attached to a display item
type Action struct {
	ID     string
	Title  string
	Folder domain.StarredFolder
}

// DisplayItem is the presentation record for one starred folder
type DisplayItem struct {
	Folder       domain.StarredFolder
	Label        string
	Description  string
	Tooltip      string
	State        ItemState
	Icon         Icon
	Command      *Action // nil when the folder is missing
	ContextValue string
	ResourcePath string
}

// StarredFoldersView presents the store as a flat list of display items.
// Existence is checked on every render; nothing is cached.
type StarredFoldersView struct {
	store   *StarStore
	fs      ports.FileSystem
	context ports.ContextSetter
}

// NewStarredFoldersView creates a view over store. context may be nil.
func NewStarredFoldersView(store *StarStore, fs ports.FileSystem, context ports.ContextSetter) *StarredFoldersView {
	return &StarredFoldersView{
		store:   store,
		fs:      fs,
		context: context,
	}
}

// Store returns the underlying store
func (v *StarredFoldersView) Store() *StarStore {
	return v.store
}

// Render maps one starred folder to its display item
func (v *StarredFoldersView) Render(f domain.StarredFolder) DisplayItem {
	item := DisplayItem{
		Folder:       f,
		Label:        f.Name,
		Description:  domain.DescribePath(v.store.Roots(), f.Path),
		Tooltip:      f.Path,
		ContextValue: ContextValueStarredFolder,
		ResourcePath: f.Path,
	}

	if v.fs.Exists(f.Path) {
		item.State = StateOK
		item.Icon = IconFolder
		item.Command = &Action{
			ID:     OpenFolderActionID,
			Title:  OpenFolderActionTitle,
			Folder: f,
		}
		return item
	}

	item.State = StateMissing
	item.Icon = IconWarning
	item.Description = NotFoundDescription
	item.Tooltip = f.Path + NotFoundTooltipSuffix
	return item
}

// Children returns the display items under parent. The list is flat: only
// the root level (nil parent) has children.
func (v *StarredFoldersView) Children(parent *domain.StarredFolder) []DisplayItem {
	if parent != nil {
		return nil
	}

	folders := v.store.List()
	items := make([]DisplayItem, 0, len(folders))
	for _, f := range folders {
		items = append(items, v.Render(f))
	}
	return items
}

// Refresh asks subscribers to re-render without changing state
func (v *StarredFoldersView) Refresh() {
	v.store.NotifyChanged()
}

// Changes returns the channel signalled whenever the view should re-render
func (v *StarredFoldersView) Changes() <-chan struct{} {
	return v.store.Changes()
}

// SelectionChanged recomputes the "current selection is starred" flag.
// An empty or non-filesystem selection leaves the flag untouched.
func (v *StarredFoldersView) SelectionChanged(target string) bool {
	path, err := domain.ParseTarget(target)
	if err != nil {
		return false
	}
	starred := v.store.IsStarred(path)
	if v.context != nil {
		v.context.SetContext(ContextIsStarred, starred)
	}
	return starred
}

// HandleDeleted reacts to a filesystem delete notification. It refreshes
// the view only when path is starred and reports whether it did.
func (v *StarredFoldersView) HandleDeleted(path string) bool {
	if !v.store.IsStarred(path) {
		return false
	}
	v.Refresh()
	return true
}
