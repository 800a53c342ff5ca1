package commands

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/pterm/pterm"

	"resprune/internal/application"
	"resprune/internal/application/detector"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

func quietLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard)
}

// fakeIndex records lifecycle and refresh calls
type fakeIndex struct {
	open      bool
	rebuild   bool
	resets    int
	refreshes [][]domain.ChangeRecord
	refreshFn func([]domain.ChangeRecord) error
	sources   map[string][]string
	opened    []string
}

var _ ports.ReferenceIndex = (*fakeIndex)(nil)

func newFakeIndex() *fakeIndex { return &fakeIndex{open: true, sources: map[string][]string{}} }

func (f *fakeIndex) Open(dir string) error {
	f.open = true
	f.opened = append(f.opened, dir)
	return nil
}

func (f *fakeIndex) Close() error {
	f.open = false
	return nil
}

func (f *fakeIndex) NeedsFullRebuild() bool { return f.rebuild }

func (f *fakeIndex) Reset() error {
	f.resets++
	f.rebuild = false
	return nil
}

func (f *fakeIndex) Refresh(_ context.Context, changes []domain.ChangeRecord) (*domain.RefreshStats, error) {
	if f.refreshFn != nil {
		if err := f.refreshFn(changes); err != nil {
			return nil, err
		}
	}
	f.refreshes = append(f.refreshes, changes)
	return &domain.RefreshStats{Added: len(changes)}, nil
}

func (f *fakeIndex) Contains(term string, exclude ...string) (bool, error) {
	sources, err := f.Sources(term)
	return len(sources) > 0, err
}

func (f *fakeIndex) Sources(term string) ([]string, error) {
	if _, err := domain.ParseQuery(term); err != nil {
		return nil, err
	}
	return f.sources[term], nil
}

func (f *fakeIndex) Stats() (*domain.IndexStats, error) {
	return &domain.IndexStats{Documents: 3, Tokens: 42}, nil
}

func (f *fakeIndex) BeginTx() (ports.IndexTx, error) {
	return nil, errors.New("not supported")
}

// memoryState is a StateStore without a file
type memoryState struct {
	state domain.IndexState
	saves int
}

func (m *memoryState) Load() (domain.IndexState, error) { return m.state, nil }

func (m *memoryState) Save(state domain.IndexState) error {
	m.saves++
	m.state = state
	return nil
}

// fakeVCS serves a fixed revision and diff
type fakeVCS struct {
	revision string
	err      error
	diffs    int
	changed  map[domain.ChangeKind][]string
}

func (f *fakeVCS) CurrentRevision(context.Context) (string, error) { return f.revision, f.err }

func (f *fakeVCS) ChangedFiles(_ context.Context, _, _ string, kind domain.ChangeKind) ([]string, error) {
	f.diffs++
	return f.changed[kind], nil
}

// fakeSourceSets counts enumerations
type fakeSourceSets struct {
	roots []string
	calls int
}

func (f *fakeSourceSets) SourceRoots(context.Context) ([]string, error) {
	f.calls++
	return f.roots, nil
}

// fakeLayout serves fixed file lists
type fakeLayout struct {
	project   string
	sources   []string
	resources []string
}

func (f *fakeLayout) ProjectPath() string { return f.project }
func (f *fakeLayout) ModulePath() string  { return filepath.Join(f.project, "app") }
func (f *fakeLayout) ModuleName() string  { return "app" }
func (f *fakeLayout) SourceRoot() string  { return filepath.Join(f.project, "app", "src", "main") }
func (f *fakeLayout) ReportFile() (string, error) {
	return "", nil
}

func (f *fakeLayout) SourceFiles([]string, []string) ([]string, error) { return f.sources, nil }

func (f *fakeLayout) ResourceFiles(_ string, match func(string) bool) ([]string, error) {
	var out []string
	for _, path := range f.resources {
		if match(filepath.Base(path)) {
			out = append(out, path)
		}
	}
	return out, nil
}

// fakeDetector schedules fixed removals and records the run order
type fakeDetector struct {
	name    string
	remove  []string
	count   domain.Count
	err     error
	journal *[]string
}

func (f *fakeDetector) Name() string { return f.name }

func (f *fakeDetector) Detect() (domain.Resources, error) {
	res := domain.Resources{}
	for _, path := range f.remove {
		res.Add(domain.BaseName(path), path)
	}
	return res, nil
}

func (f *fakeDetector) Run(_ context.Context, env detector.Env) (*detector.Report, error) {
	*f.journal = append(*f.journal, f.name)
	if f.err != nil {
		return nil, &application.DetectorError{Detector: f.name, Err: f.err}
	}
	if !env.DryRun {
		for _, path := range f.remove {
			env.Plan.Remove(path)
		}
	}
	return &detector.Report{Detector: f.name, Total: len(f.remove), Count: f.count}, nil
}

// checkedPlan verifies the index is closed when the plan is committed
type checkedPlan struct {
	index        *fakeIndex
	removed      []string
	committed    bool
	discarded    bool
	openAtCommit bool
}

func (p *checkedPlan) Remove(path string)     { p.removed = append(p.removed, path) }
func (p *checkedPlan) Replace(path, _ string) { p.removed = append(p.removed, path) }

func (p *checkedPlan) Commit() error {
	p.committed = true
	p.openAtCommit = p.index.open
	return nil
}

func (p *checkedPlan) Discard() { p.discarded = true }

func newRefresh(idx *fakeIndex, state *memoryState, vcs *fakeVCS, sets *fakeSourceSets, layout *fakeLayout) *RefreshIndexCommand {
	changes := application.NewChangeSetResolver(vcs, sets, layout, nil, quietLogger())
	return NewRefreshIndexCommand(idx, state, vcs, changes, quietLogger())
}
