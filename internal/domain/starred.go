package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// StarredFolder is a folder the user has starred
type StarredFolder struct {
	Name            string `json:"name"`                      // Last path segment at star time
	Path            string `json:"path"`                      // Absolute path, unique within a collection
	WorkspaceFolder string `json:"workspaceFolder,omitempty"` // Containing root name at star time
}

// NewStarredFolder builds an entry for path. The name is derived from the
// final path segment and is not re-derived later.
func NewStarredFolder(path string, root *Root) StarredFolder {
	f := StarredFolder{
		Name: filepath.Base(path),
		Path: path,
	}
	if root != nil {
		f.WorkspaceFolder = root.Name
	}
	return f
}

// uriPrefix matches an explicit URI authority ("scheme://"). Other inputs
// containing a colon, like "notes:v2", are folder names.
var uriPrefix = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// ParseTarget resolves a star/unstar target to a filesystem path.
// Plain paths and file URIs are accepted; any other scheme is not a
// filesystem location. Paths are returned exactly as given.
func ParseTarget(target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", fmt.Errorf("empty target")
	}

	// Windows drive letters ("C:\...") look like a scheme to url.Parse
	if filepath.VolumeName(target) != "" {
		return target, nil
	}

	isFile := len(target) >= 5 && strings.EqualFold(target[:5], "file:")
	if !isFile && !uriPrefix.MatchString(target) {
		return target, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("malformed URI %s: %w", target, err)
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", fmt.Errorf("not a filesystem location: %s", target)
	}
	if u.Path == "" {
		return "", fmt.Errorf("file URI has no path: %s", target)
	}
	return filepath.FromSlash(u.Path), nil
}
