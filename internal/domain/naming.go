package domain

import (
	"path/filepath"
	"strings"
	"unicode"
)

// PascalCase converts a snake_case resource name to the generated class
// name prefix: "activity_main" -> "ActivityMain".
func PascalCase(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SimpleClassName returns the last segment of a fully-qualified class name
func SimpleClassName(fqcn string) string {
	if i := strings.LastIndexByte(fqcn, '.'); i >= 0 {
		return fqcn[i+1:]
	}
	return fqcn
}

// IsClassFile reports whether path is a Kotlin or Java source file named after class
func IsClassFile(path, class string) bool {
	ext := filepath.Ext(path)
	if ext != ".kt" && ext != ".java" {
		return false
	}
	return strings.TrimSuffix(filepath.Base(path), ext) == class
}

// ResourceID strips the "@+id/" or "@id/" prefix from an android:id value
func ResourceID(value string) string {
	for _, prefix := range []string{"@+id/", "@id/"} {
		if strings.HasPrefix(value, prefix) {
			return strings.TrimPrefix(value, prefix)
		}
	}
	return value
}
