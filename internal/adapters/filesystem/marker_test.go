package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"resprune/internal/domain"
)

func TestMarkerStore_CreatesEmptyMarker(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".index")
	store := NewMarkerStore(dir)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state.Revision != "" {
		t.Errorf("expected empty revision, got %q", state.Revision)
	}
	if _, err := os.Stat(filepath.Join(dir, MarkerName)); err != nil {
		t.Errorf("marker should exist after Load: %v", err)
	}
}

func TestMarkerStore_SaveAndLoad(t *testing.T) {
	store := NewMarkerStore(t.TempDir())

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	state.Revision = "4f2a9c1"
	if err := store.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reloaded != (domain.IndexState{MarkerPath: state.MarkerPath, Revision: "4f2a9c1"}) {
		t.Errorf("unexpected state %+v", reloaded)
	}
}
