package domain

import (
	"path/filepath"
	"strings"
)

// DefaultSourceExtensions are the file types indexed for references
var DefaultSourceExtensions = []string{".kt", ".java", ".xml"}

// Indexable reports whether path has one of extensions and is not a
// navigation graph. Graphs would otherwise count as references to their own
// destinations.
func Indexable(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	matched := false
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	return !strings.HasPrefix(filepath.Base(filepath.Dir(path)), "navigation")
}
