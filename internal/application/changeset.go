package application

import (
	"context"
	"path/filepath"

	"github.com/pterm/pterm"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// ChangeSetResolver computes the change records that bring the index from
// one revision to another.
type ChangeSetResolver struct {
	vcs        ports.VersionControl
	sourceSets ports.SourceSetProvider
	layout     ports.ModuleLayout
	extensions []string
	logger     *pterm.Logger
}

// NewChangeSetResolver creates a resolver. Nil extensions select the defaults.
func NewChangeSetResolver(vcs ports.VersionControl, sourceSets ports.SourceSetProvider, layout ports.ModuleLayout, extensions []string, logger *pterm.Logger) *ChangeSetResolver {
	if len(extensions) == 0 {
		extensions = domain.DefaultSourceExtensions
	}
	return &ChangeSetResolver{
		vcs:        vcs,
		sourceSets: sourceSets,
		layout:     layout,
		extensions: extensions,
		logger:     logger,
	}
}

// Resolve returns the changes between oldRevision and currentRevision.
// An empty oldRevision enumerates every source file as new. Equal revisions
// yield no changes. Version-control failures are returned unchanged.
func (r *ChangeSetResolver) Resolve(ctx context.Context, oldRevision, currentRevision string) ([]domain.ChangeRecord, error) {
	if oldRevision == "" {
		return r.enumerate(ctx)
	}
	if oldRevision == currentRevision {
		return nil, nil
	}
	return r.diff(ctx, oldRevision, currentRevision)
}

// enumerate lists every indexable file below the module's source roots
func (r *ChangeSetResolver) enumerate(ctx context.Context) ([]domain.ChangeRecord, error) {
	roots, err := r.sourceSets.SourceRoots(ctx)
	if err != nil {
		r.logger.Warn("source sets unavailable, falling back to default root",
			r.logger.Args("root", r.layout.SourceRoot(), "error", err))
		roots = []string{r.layout.SourceRoot()}
	}

	files, err := r.layout.SourceFiles(roots, r.extensions)
	if err != nil {
		return nil, err
	}

	changes := make([]domain.ChangeRecord, len(files))
	for i, path := range files {
		changes[i] = domain.ChangeRecord{Path: path, Kind: domain.ChangeNew}
	}
	return changes, nil
}

// diff runs one version-control query per change kind: modified, added, deleted
func (r *ChangeSetResolver) diff(ctx context.Context, oldRevision, currentRevision string) ([]domain.ChangeRecord, error) {
	var changes []domain.ChangeRecord
	for _, kind := range []domain.ChangeKind{domain.ChangeChanged, domain.ChangeNew, domain.ChangeDeleted} {
		paths, err := r.vcs.ChangedFiles(ctx, oldRevision, currentRevision, kind)
		if err != nil {
			return nil, err
		}
		for _, rel := range paths {
			path := filepath.Join(r.layout.ProjectPath(), filepath.FromSlash(rel))
			if !domain.Indexable(path, r.extensions) {
				continue
			}
			changes = append(changes, domain.ChangeRecord{Path: path, Kind: kind})
		}
	}
	return changes, nil
}
