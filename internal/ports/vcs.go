package ports

import (
	"context"

	"resprune/internal/domain"
)

// VersionControl resolves revisions and file deltas of the project
type VersionControl interface {
	// CurrentRevision returns the id of the checked-out revision
	CurrentRevision(ctx context.Context) (string, error)

	// ChangedFiles lists project-relative paths changed between two revisions
	// with the given kind of change.
	ChangedFiles(ctx context.Context, oldRevision, newRevision string, kind domain.ChangeKind) ([]string, error)
}

// SourceSetProvider reports the source roots the build system compiles for a module
type SourceSetProvider interface {
	SourceRoots(ctx context.Context) ([]string, error)
}
