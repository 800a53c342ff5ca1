package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"resprune/internal/application"
	"resprune/internal/ports"
)

// CleanIndexResult contains the result of removing the index
type CleanIndexResult struct {
	IndexDir string
	Rebuild  *RefreshIndexResult // Set when the index was rebuilt
}

// CleanIndexCommand deletes the index directory and optionally rebuilds it
type CleanIndexCommand struct {
	index       ports.ReferenceIndex
	refresh     *RefreshIndexCommand
	ProjectPath string
	IndexDir    string
	Rebuild     bool
}

// NewCleanIndexCommand creates a new CleanIndexCommand. refresh is only
// used with rebuild and must share index.
func NewCleanIndexCommand(index ports.ReferenceIndex, refresh *RefreshIndexCommand, projectPath, indexDir string, rebuild bool) *CleanIndexCommand {
	return &CleanIndexCommand{
		index:       index,
		refresh:     refresh,
		ProjectPath: projectPath,
		IndexDir:    indexDir,
		Rebuild:     rebuild,
	}
}

// Validate refuses to remove anything but a dedicated index directory
func (c *CleanIndexCommand) Validate() error {
	if err := application.ValidateRequired("indexDir", c.IndexDir); err != nil {
		return err
	}
	dir := filepath.Clean(c.IndexDir)
	if dir == filepath.Clean(c.ProjectPath) || dir == string(filepath.Separator) {
		return &application.ValidationError{
			Field:   "indexDir",
			Message: fmt.Sprintf("refusing to remove %s", c.IndexDir),
		}
	}
	if c.Rebuild && c.refresh == nil {
		return &application.ValidationError{
			Field:   "rebuild",
			Message: "rebuild requires a refresh command",
		}
	}
	return nil
}

// Execute closes and removes the index. With Rebuild the index is reopened
// and refreshed from scratch.
func (c *CleanIndexCommand) Execute(ctx context.Context) (*CleanIndexResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.index.Close(); err != nil {
		return nil, fmt.Errorf("failed to close index: %w", err)
	}
	if err := os.RemoveAll(c.IndexDir); err != nil {
		return nil, fmt.Errorf("failed to remove index: %w", err)
	}

	result := &CleanIndexResult{IndexDir: c.IndexDir}
	if !c.Rebuild {
		return result, nil
	}

	if err := c.index.Open(c.IndexDir); err != nil {
		return nil, err
	}
	rebuilt, err := c.refresh.Execute(ctx)
	if err != nil {
		return nil, err
	}
	result.Rebuild = rebuilt
	return result, nil
}
