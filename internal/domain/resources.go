package domain

import (
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// ResourceSet holds the absolute paths that materialize one resource name,
// e.g. the same drawable provided at several densities. Kept sorted and unique.
type ResourceSet []string

// Contains reports whether path belongs to the set
func (s ResourceSet) Contains(path string) bool {
	_, found := slices.BinarySearch(s, path)
	return found
}

// Insert returns the set with path added, keeping it sorted and unique
func (s ResourceSet) Insert(path string) ResourceSet {
	i, found := slices.BinarySearch(s, path)
	if found {
		return s
	}
	return slices.Insert(s, i, path)
}

// Resources maps a resource name to the files declaring or materializing it
type Resources map[string]ResourceSet

// Add records path under name, keeping the set sorted and de-duplicated
func (r Resources) Add(name, path string) {
	r[name] = r[name].Insert(path)
}

// Names returns the resource names in lexical order
func (r Resources) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileCount returns the number of paths across all groups
func (r Resources) FileCount() int {
	n := 0
	for _, set := range r {
		n += len(set)
	}
	return n
}

// WithoutEmpty returns a copy without entries whose name is empty
func (r Resources) WithoutEmpty() Resources {
	out := make(Resources, len(r))
	for name, set := range r {
		if strings.TrimSpace(name) == "" {
			continue
		}
		out[name] = set
	}
	return out
}

// ByPath inverts the map: document path -> names declared in that document.
// Names under each path are sorted.
func (r Resources) ByPath() map[string][]string {
	out := make(map[string][]string)
	for _, name := range r.Names() {
		for _, path := range r[name] {
			out[path] = append(out[path], name)
		}
	}
	return out
}

// BaseName returns a resource name for a file: its base name up to the first dot.
// "ic_launcher.9.png" -> "ic_launcher".
func BaseName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
