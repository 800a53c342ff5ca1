package domain

import "time"

// ChangeKind classifies a source file change applied to the reference index
type ChangeKind int

const (
	ChangeNew ChangeKind = iota
	ChangeChanged
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeNew:
		return "new"
	case ChangeChanged:
		return "changed"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ChangeRecord is one file change to apply to the index
type ChangeRecord struct {
	Path string // Absolute path of the source file
	Kind ChangeKind
}

// IndexState is the persisted revision marker of the reference index
type IndexState struct {
	MarkerPath string // Plain-text file holding the revision
	Revision   string // Last revision the index was refreshed to; empty if never
}

// UpToDate reports whether the index already reflects revision
func (s IndexState) UpToDate(revision string) bool {
	return s.Revision != "" && s.Revision == revision
}

// RefreshStats holds statistics from an index refresh
type RefreshStats struct {
	Added    int
	Updated  int
	Deleted  int
	Missing  int // New/Changed records whose file no longer exists
	Duration time.Duration
}

// Applied returns the number of change records written to the index
func (s RefreshStats) Applied() int {
	return s.Added + s.Updated + s.Deleted
}

// IndexStats describes the content of the reference index
type IndexStats struct {
	Documents int
	Tokens    int
}
