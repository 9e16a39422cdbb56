package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"folderstar/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderPath" -> "folder path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"target":     "target",
		"folderPath": "folder path",
		"path":       "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ResolveTarget validates a star/unstar target and returns the absolute
// filesystem path it names. Relative paths are resolved against the
// working directory.
func ResolveTarget(target string) (string, error) {
	if err := ValidateRequired("target", target); err != nil {
		return "", err
	}

	path, err := domain.ParseTarget(target)
	if err != nil {
		return "", &TargetError{Target: target, Reason: err.Error()}
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", &TargetError{Target: target, Reason: err.Error()}
		}
		path = abs
	}
	return path, nil
}
