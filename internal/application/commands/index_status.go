package commands

import (
	"context"

	"github.com/pterm/pterm"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// IndexStatusResult describes the index and how it relates to the checkout
type IndexStatusResult struct {
	State           domain.IndexState
	Stats           *domain.IndexStats
	CurrentRevision string // Empty if version control is unavailable
	UpToDate        bool
	NeedsRebuild    bool
}

// IndexStatusCommand reports marker revision and index statistics
type IndexStatusCommand struct {
	index  ports.ReferenceIndex
	state  ports.StateStore
	vcs    ports.VersionControl
	logger *pterm.Logger
}

// NewIndexStatusCommand creates a new IndexStatusCommand. The index must be open.
func NewIndexStatusCommand(index ports.ReferenceIndex, state ports.StateStore, vcs ports.VersionControl, logger *pterm.Logger) *IndexStatusCommand {
	return &IndexStatusCommand{index: index, state: state, vcs: vcs, logger: logger}
}

// Execute gathers the status. A version-control failure is logged, not returned.
func (c *IndexStatusCommand) Execute(ctx context.Context) (*IndexStatusResult, error) {
	state, err := c.state.Load()
	if err != nil {
		return nil, err
	}
	stats, err := c.index.Stats()
	if err != nil {
		return nil, err
	}

	result := &IndexStatusResult{
		State:        state,
		Stats:        stats,
		NeedsRebuild: c.index.NeedsFullRebuild(),
	}

	current, err := c.vcs.CurrentRevision(ctx)
	if err != nil {
		c.logger.Warn("cannot resolve current revision", c.logger.Args("error", err))
		return result, nil
	}
	result.CurrentRevision = current
	result.UpToDate = !result.NeedsRebuild && state.UpToDate(current)
	return result, nil
}
