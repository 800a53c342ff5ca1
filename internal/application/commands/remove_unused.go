package commands

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"resprune/internal/application"
	"resprune/internal/application/detector"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

// RemoveUnusedResult contains the outcome of a prune pass
type RemoveUnusedResult struct {
	Refresh    *RefreshIndexResult
	Reports    []*detector.Report
	Candidates int
	Total      domain.Count
	DryRun     bool
	Staged     bool // The plan was left for the caller to commit
}

// RemoveUnusedCommand refreshes the index, runs detectors in order and
// applies the resulting deletion plan.
type RemoveUnusedCommand struct {
	index     ports.ReferenceIndex
	refresh   *RefreshIndexCommand
	detectors []detector.Detector
	plan      ports.DeletionPlan
	logger    *pterm.Logger

	DryRun bool
	// Stage leaves a live plan uncommitted so it can be reviewed
	Stage bool
}

// NewRemoveUnusedCommand creates a new RemoveUnusedCommand. The index must be open.
func NewRemoveUnusedCommand(index ports.ReferenceIndex, refresh *RefreshIndexCommand, detectors []detector.Detector, plan ports.DeletionPlan, logger *pterm.Logger, dryRun bool) *RemoveUnusedCommand {
	return &RemoveUnusedCommand{
		index:     index,
		refresh:   refresh,
		detectors: detectors,
		plan:      plan,
		logger:    logger,
		DryRun:    dryRun,
	}
}

// Validate checks that there is something to run
func (c *RemoveUnusedCommand) Validate() error {
	if len(c.detectors) == 0 {
		return &application.ValidationError{
			Field:   "detectors",
			Message: "at least one detector is required",
		}
	}
	return nil
}

// Execute runs the pass. The index is refreshed and committed before any
// detector queries it. A failing detector discards the whole plan. The index
// is closed before the plan is committed.
func (c *RemoveUnusedCommand) Execute(ctx context.Context) (*RemoveUnusedResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	refreshed, err := c.refresh.Execute(ctx)
	if err != nil {
		return nil, err
	}
	result := &RemoveUnusedResult{Refresh: refreshed, DryRun: c.DryRun}

	env := detector.Env{
		Resolver: application.NewUsageResolver(c.index, c.logger),
		Plan:     c.plan,
		DryRun:   c.DryRun,
		Logger:   c.logger,
	}
	for _, d := range c.detectors {
		report, err := d.Run(ctx, env)
		if err != nil {
			c.plan.Discard()
			return nil, err
		}
		c.logger.Info("detector finished", c.logger.Args(
			"detector", report.Detector,
			"total", report.Total,
			"groups", report.Count.Groups,
			"files", report.Count.Files,
			"megabytes", fmt.Sprintf("%.2f", report.Count.Megabytes()),
		))
		result.Reports = append(result.Reports, report)
		result.Candidates += report.Total
		result.Total = result.Total.Add(report.Count)
	}

	if err := c.index.Close(); err != nil {
		c.plan.Discard()
		return nil, fmt.Errorf("failed to close index: %w", err)
	}

	if c.DryRun {
		c.plan.Discard()
		return result, nil
	}
	if c.Stage {
		result.Staged = true
		return result, nil
	}
	if err := c.plan.Commit(); err != nil {
		return result, fmt.Errorf("failed to apply deletion plan: %w", err)
	}
	return result, nil
}
