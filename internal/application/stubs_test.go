package application

import (
	"context"
	"io"
	"slices"
	"sort"

	"github.com/pterm/pterm"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

func quietLogger() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard)
}

// memoryIndex is an in-memory ReferenceIndex over tokenized documents
type memoryIndex struct {
	docs    map[string][]string
	queries []string
}

var _ ports.ReferenceIndex = (*memoryIndex)(nil)

func newMemoryIndex(docs map[string]string) *memoryIndex {
	idx := &memoryIndex{docs: map[string][]string{}}
	for path, text := range docs {
		idx.docs[path] = domain.Tokenize(text)
	}
	return idx
}

func (m *memoryIndex) Open(string) error      { return nil }
func (m *memoryIndex) Close() error           { return nil }
func (m *memoryIndex) NeedsFullRebuild() bool { return false }
func (m *memoryIndex) Reset() error {
	m.docs = map[string][]string{}
	return nil
}

func (m *memoryIndex) Refresh(_ context.Context, changes []domain.ChangeRecord) (*domain.RefreshStats, error) {
	return &domain.RefreshStats{}, nil
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
	m.queries = append(m.queries, term)
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

func (m *memoryIndex) Stats() (*domain.IndexStats, error) {
	return &domain.IndexStats{Documents: len(m.docs)}, nil
}

func (m *memoryIndex) BeginTx() (ports.IndexTx, error) { return nil, nil }

// recordingPlan collects scheduled operations
type recordingPlan struct {
	removed  []string
	replaced map[string]string
}

var _ ports.DeletionPlan = (*recordingPlan)(nil)

func newRecordingPlan() *recordingPlan {
	return &recordingPlan{replaced: map[string]string{}}
}

func (p *recordingPlan) Remove(path string)            { p.removed = append(p.removed, path) }
func (p *recordingPlan) Replace(path, tempPath string) { p.replaced[path] = tempPath }
func (p *recordingPlan) Commit() error                 { return nil }
func (p *recordingPlan) Discard()                      {}
