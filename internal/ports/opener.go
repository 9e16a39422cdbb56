package ports

// Revealer shows a folder in the primary navigation surface (the system
// file manager)
type Revealer interface {
	Reveal(path string) error
}

// WindowOpener opens a folder in a new top-level editor window
type WindowOpener interface {
	OpenWindow(path string) error
}
