package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// DeletionPlan stages file removals and replacements found during analysis.
// Nothing touches the source tree until Commit.
type DeletionPlan struct {
	operations []planOperation
	committed  bool
}

// planOperation is one staged mutation. An empty temp means removal.
type planOperation struct {
	path string
	temp string
}

var _ ports.ReviewablePlan = (*DeletionPlan)(nil)

// NewDeletionPlan creates an empty plan
func NewDeletionPlan() *DeletionPlan {
	return &DeletionPlan{
		operations: make([]planOperation, 0),
	}
}

// Remove stages path for deletion (doesn't delete yet)
func (p *DeletionPlan) Remove(path string) {
	p.operations = append(p.operations, planOperation{path: path})
}

// Replace stages tempPath to be moved over path
func (p *DeletionPlan) Replace(path, tempPath string) {
	p.operations = append(p.operations, planOperation{path: path, temp: tempPath})
}

// Len returns the number of staged operations
func (p *DeletionPlan) Len() int {
	return len(p.operations)
}

// Paths returns the affected paths in staging order
func (p *DeletionPlan) Paths() []string {
	paths := make([]string, len(p.operations))
	for i, op := range p.operations {
		paths[i] = op.path
	}
	return paths
}

// Entries returns the staged operations in staging order
func (p *DeletionPlan) Entries() []domain.PlanEntry {
	entries := make([]domain.PlanEntry, len(p.operations))
	for i, op := range p.operations {
		entries[i] = domain.PlanEntry{Path: op.path, TempPath: op.temp}
	}
	return entries
}

// Exclude drops every staged operation on path, cleaning up its temp file
func (p *DeletionPlan) Exclude(path string) {
	kept := p.operations[:0]
	for _, op := range p.operations {
		if op.path == path {
			if op.temp != "" {
				os.Remove(op.temp)
			}
			continue
		}
		kept = append(kept, op)
	}
	p.operations = kept
}

// Commit applies all staged operations. A failing operation does not stop
// the remaining ones; all failures are returned joined.
func (p *DeletionPlan) Commit() error {
	if p.committed {
		return fmt.Errorf("deletion plan already committed")
	}
	p.committed = true

	var errs []error
	for _, op := range p.operations {
		if op.temp == "" {
			if err := os.Remove(op.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("failed to delete %s: %w", op.path, err))
			}
			continue
		}
		if err := os.Rename(op.temp, op.path); err != nil {
			os.Remove(op.temp) // Best effort
			errs = append(errs, fmt.Errorf("failed to replace %s: %w", op.path, err))
		}
	}
	return errors.Join(errs...)
}

// Discard drops the plan, removing staged temp files
func (p *DeletionPlan) Discard() {
	if p.committed {
		return
	}
	for _, op := range p.operations {
		if op.temp != "" {
			os.Remove(op.temp) // Best effort, ignore errors
		}
	}
	p.operations = p.operations[:0]
}
