package ports

import (
	"context"

	"resprune/internal/domain"
)

// ReferenceIndex is the persistent token index over a module's source files.
// It answers one question: does a term appear in any indexed document.
// A single process holds the index directory for the duration of a run.
type ReferenceIndex interface {
	// Lifecycle
	Open(dir string) error
	Close() error

	// NeedsFullRebuild reports an index written by an incompatible version.
	// Reset empties it so the next refresh enumerates every source file.
	NeedsFullRebuild() bool
	Reset() error

	// Refresh applies changes in order inside one writer session.
	// Either every change is committed or none is.
	Refresh(ctx context.Context, changes []domain.ChangeRecord) (*domain.RefreshStats, error)

	// Contains reports whether a document other than those in exclude holds
	// every token of term. Parse failures are returned as errors.
	Contains(term string, exclude ...string) (bool, error)

	// Sources returns the paths of all documents matching term
	Sources(term string) ([]string, error)

	Stats() (*domain.IndexStats, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx represents one writer session over the index
type IndexTx interface {
	Upsert(path string, tokens []string) error
	Delete(path string) error

	// Transaction control
	Commit() error
	Rollback() error
}

// StateStore persists the revision marker next to the index
type StateStore interface {
	// Load reads the marker, creating an empty one if absent
	Load() (domain.IndexState, error)
	Save(state domain.IndexState) error
}
