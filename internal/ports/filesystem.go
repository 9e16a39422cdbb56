package ports

// FileSystem answers existence questions about starred paths at render
// and open time
type FileSystem interface {
	// Exists reports whether path currently exists
	Exists(path string) bool
}
