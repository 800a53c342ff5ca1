package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"resprune/internal/application"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

// RefreshIndexResult contains the result of an index refresh
type RefreshIndexResult struct {
	OldRevision string
	NewRevision string
	Skipped     bool // The marker already matched the current revision
	Rebuilt     bool // The index was reset before refreshing
	Changes     int
	Stats       *domain.RefreshStats
}

// RefreshIndexCommand brings the reference index up to the checked-out revision
type RefreshIndexCommand struct {
	index   ports.ReferenceIndex
	state   ports.StateStore
	vcs     ports.VersionControl
	changes *application.ChangeSetResolver
	logger  *pterm.Logger
}

// NewRefreshIndexCommand creates a new RefreshIndexCommand. The index must be open.
func NewRefreshIndexCommand(index ports.ReferenceIndex, state ports.StateStore, vcs ports.VersionControl, changes *application.ChangeSetResolver, logger *pterm.Logger) *RefreshIndexCommand {
	return &RefreshIndexCommand{
		index:   index,
		state:   state,
		vcs:     vcs,
		changes: changes,
		logger:  logger,
	}
}

// Execute refreshes the index. When the marker matches the current revision
// nothing is computed and the index is not written. The marker is saved only
// after the changes are committed.
func (c *RefreshIndexCommand) Execute(ctx context.Context) (*RefreshIndexResult, error) {
	state, err := c.state.Load()
	if err != nil {
		return nil, err
	}
	result := &RefreshIndexResult{OldRevision: state.Revision}

	if c.index.NeedsFullRebuild() {
		c.logger.Info("index format changed, rebuilding")
		if err := c.index.Reset(); err != nil {
			return nil, fmt.Errorf("failed to reset index: %w", err)
		}
		// An emptied index must never sit behind a marker that says current
		state.Revision = ""
		if err := c.state.Save(state); err != nil {
			return nil, err
		}
		result.Rebuilt = true
	}

	current, err := c.vcs.CurrentRevision(ctx)
	if err != nil {
		return nil, err
	}
	result.NewRevision = current

	if state.UpToDate(current) {
		c.logger.Info("index not changed", c.logger.Args("revision", current))
		result.Skipped = true
		return result, nil
	}

	started := time.Now()
	changes, err := c.changes.Resolve(ctx, state.Revision, current)
	if err != nil {
		return nil, err
	}
	result.Changes = len(changes)

	stats, err := c.index.Refresh(ctx, changes)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh index: %w", err)
	}
	stats.Duration = time.Since(started)
	result.Stats = stats

	state.Revision = current
	if err := c.state.Save(state); err != nil {
		return nil, err
	}

	c.logger.Info("index refreshed", c.logger.Args(
		"from", shortRevision(result.OldRevision),
		"to", shortRevision(current),
		"added", stats.Added,
		"updated", stats.Updated,
		"deleted", stats.Deleted,
		"missing", stats.Missing,
		"took", stats.Duration.Round(time.Millisecond),
	))
	return result, nil
}

func shortRevision(revision string) string {
	if revision == "" {
		return "(none)"
	}
	if len(revision) > 8 {
		return revision[:8]
	}
	return revision
}
