package application

import (
	"fmt"
	"os"
	"strings"
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
// for more readable error messages (e.g., "indexDir" -> "index directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"projectPath": "project path",
		"modulePath":  "module path",
		"indexDir":    "index directory",
		"term":        "search term",
		"threshold":   "pixel threshold",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDir checks that path names an existing directory
func ValidateDir(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is not a directory: %s", formatFieldName(fieldName), path),
		}
	}
	return nil
}

// ValidateModule checks that the module directory exists
func ValidateModule(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNoModule, path)
	}
	return nil
}

// NavigationKey joins a destination id and its fragment class name
func NavigationKey(id, class string) string {
	return id + "-" + class
}

// ParseNavigationKey splits a "{id}-{fully.qualified.Class}" key.
// Returns a KeyError if the separator or either part is missing.
func ParseNavigationKey(key string) (id, class string, err error) {
	id, class, ok := strings.Cut(key, "-")
	if !ok {
		return "", "", &KeyError{Key: key, Reason: "missing '-' separator"}
	}
	if id == "" || class == "" {
		return "", "", &KeyError{Key: key, Reason: "empty id or class name"}
	}
	return id, class, nil
}
