package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// MarkerName is the file holding the last indexed revision
const MarkerName = "revision"

// MarkerStore implements ports.StateStore with a plain-text marker file
type MarkerStore struct {
	path string
}

var _ ports.StateStore = (*MarkerStore)(nil)

// NewMarkerStore creates a store for the marker inside indexDir
func NewMarkerStore(indexDir string) *MarkerStore {
	return &MarkerStore{path: filepath.Join(indexDir, MarkerName)}
}

// Load reads the marker, creating an empty one if it does not exist
func (s *MarkerStore) Load() (domain.IndexState, error) {
	state := domain.IndexState{MarkerPath: s.path}

	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return state, fmt.Errorf("failed to create index directory: %w", err)
		}
		if err := os.WriteFile(s.path, nil, 0644); err != nil {
			return state, fmt.Errorf("failed to create marker: %w", err)
		}
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("failed to read marker: %w", err)
	}

	state.Revision = strings.TrimSpace(string(content))
	return state, nil
}

// Save writes the revision of state to the marker file
func (s *MarkerStore) Save(state domain.IndexState) error {
	path := state.MarkerPath
	if path == "" {
		path = s.path
	}
	if err := os.WriteFile(path, []byte(state.Revision), 0644); err != nil {
		return fmt.Errorf("failed to write marker: %w", err)
	}
	return nil
}
