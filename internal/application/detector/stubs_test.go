package detector

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"

	"resprune/internal/adapters/filesystem"
	"resprune/internal/adapters/xmldoc"
	"resprune/internal/application"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

func quietLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard)
}

// countingLayout counts resource enumerations
type countingLayout struct {
	ports.ModuleLayout
	listings int
}

func (c *countingLayout) ResourceFiles(prefix string, match func(string) bool) ([]string, error) {
	c.listings++
	return c.ModuleLayout.ResourceFiles(prefix, match)
}

// memoryIndex matches queries against documents tokenized in memory
type memoryIndex struct {
	ports.ReferenceIndex
	docs map[string][]string
}

func newMemoryIndex(docs map[string]string) *memoryIndex {
	idx := &memoryIndex{docs: map[string][]string{}}
	for path, text := range docs {
		idx.docs[path] = domain.Tokenize(text)
	}
	return idx
}

func (m *memoryIndex) Contains(term string, exclude ...string) (bool, error) {
	sources, err := m.Sources(term)
	if err != nil {
		return false, err
	}
	for _, path := range sources {
		if !slices.Contains(exclude, path) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryIndex) Sources(term string) ([]string, error) {
	q, err := domain.ParseQuery(term)
	if err != nil {
		return nil, err
	}
	var out []string
	for path, tokens := range m.docs {
		if q.MatchedBy(tokens) {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

// project is a module tree on disk
type project struct {
	t    *testing.T
	root string
	repo *filesystem.Repository
}

func newProject(t *testing.T) *project {
	root := t.TempDir()
	return &project{t: t, root: root, repo: filesystem.NewRepository(root, "app")}
}

// write creates a file relative to the module directory
func (p *project) write(rel, content string) string {
	p.t.Helper()
	path := filepath.Join(p.repo.ModulePath(), filepath.FromSlash(rel))
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (p *project) sources() Sources {
	return Sources{Layout: p.repo, Documents: xmldoc.NewDocuments(), Logger: quietLogger()}
}

func (p *project) env(idx ports.ReferenceIndex, plan ports.DeletionPlan, dryRun bool) Env {
	return Env{
		Resolver: application.NewUsageResolver(idx, quietLogger()),
		Plan:     plan,
		DryRun:   dryRun,
		Logger:   quietLogger(),
	}
}

func runDetector(t *testing.T, d Detector, env Env) *Report {
	t.Helper()
	report, err := d.Run(context.Background(), env)
	require.NoError(t, err)
	return report
}
