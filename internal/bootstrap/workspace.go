// Package bootstrap wires adapters into the application commands for the
// command-line, TUI and MCP entry points.
package bootstrap

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"resprune/internal/adapters/filesystem"
	"resprune/internal/adapters/git"
	"resprune/internal/adapters/gradle"
	"resprune/internal/adapters/imageinfo"
	"resprune/internal/adapters/sqlite"
	"resprune/internal/adapters/xmldoc"
	"resprune/internal/application"
	"resprune/internal/application/commands"
	"resprune/internal/application/detector"
	"resprune/internal/config"
)

// Workspace holds the adapters for one project module
type Workspace struct {
	Config    *config.Config
	Logger    *pterm.Logger
	Layout    *filesystem.Repository
	Index     *sqlite.Index
	State     *filesystem.MarkerStore
	VCS       *git.Repository
	Documents *xmldoc.Documents
	Images    *imageinfo.Inspector
}

// NewLogger returns the structured logger for w, at debug level when verbose
func NewLogger(w io.Writer, verbose bool) *pterm.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(level).WithWriter(w)
}

// Open validates the module and opens the reference index. Close releases it.
func Open(cfg *config.Config, logger *pterm.Logger) (*Workspace, error) {
	if err := application.ValidateDir("projectPath", cfg.Project); err != nil {
		return nil, err
	}
	if err := application.ValidateModule(cfg.ModulePath()); err != nil {
		return nil, err
	}

	ws := &Workspace{
		Config:    cfg,
		Logger:    logger,
		Layout:    filesystem.NewRepository(cfg.Project, cfg.Module),
		Index:     sqlite.NewIndex(),
		State:     filesystem.NewMarkerStore(cfg.IndexDir),
		VCS:       git.NewRepository(cfg.Project),
		Documents: xmldoc.NewDocuments(),
		Images:    imageinfo.NewInspector(),
	}
	if err := ws.Index.Open(cfg.IndexDir); err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	logger.Debug("workspace opened", logger.Args(
		"project", cfg.Project,
		"module", cfg.Module,
		"index", cfg.IndexDir,
	))
	return ws, nil
}

// Close releases the index. It is safe to call more than once.
func (w *Workspace) Close() error {
	return w.Index.Close()
}

// RefreshCommand builds the index refresh for this module
func (w *Workspace) RefreshCommand() *commands.RefreshIndexCommand {
	sourceSets := gradle.NewSourceSets(w.Config.Project, w.Config.Module)
	changes := application.NewChangeSetResolver(w.VCS, sourceSets, w.Layout, w.Config.Extensions, w.Logger)
	return commands.NewRefreshIndexCommand(w.Index, w.State, w.VCS, changes, w.Logger)
}

// Detectors builds the named detectors
func (w *Workspace) Detectors(names ...string) ([]detector.Detector, error) {
	src := detector.Sources{
		Layout:    w.Layout,
		Documents: w.Documents,
		Logger:    w.Logger,
	}
	return detector.Builtin(src, detector.Options{DrawableExtensions: w.Config.DrawableExtensions}, names...)
}

// RemoveUnusedCommand builds a prune pass over the named detectors
func (w *Workspace) RemoveUnusedCommand(plan *filesystem.DeletionPlan, dryRun bool, names ...string) (*commands.RemoveUnusedCommand, error) {
	detectors, err := w.Detectors(names...)
	if err != nil {
		return nil, err
	}
	return commands.NewRemoveUnusedCommand(w.Index, w.RefreshCommand(), detectors, plan, w.Logger, dryRun), nil
}

// DetectorNames picks the detectors for a pass: explicit names win, then
// the full set, then the default.
func DetectorNames(full bool, names []string) []string {
	switch {
	case len(names) > 0:
		return names
	case full:
		return detector.Full
	default:
		return detector.Default
	}
}
