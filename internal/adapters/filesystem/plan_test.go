package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"resprune/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestDeletionPlan_NothingHappensBeforeCommit(t *testing.T) {
	dir := t.TempDir()
	gone := filepath.Join(dir, "gone.png")
	doc := filepath.Join(dir, "colors.xml")
	writeFile(t, gone, "png")
	writeFile(t, doc, "old")
	writeFile(t, doc+".dest", "new")

	plan := NewDeletionPlan()
	plan.Remove(gone)
	plan.Replace(doc, doc+".dest")

	if _, err := os.Stat(gone); err != nil {
		t.Fatalf("file deleted before commit: %v", err)
	}

	if err := plan.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if _, err := os.Stat(gone); !os.IsNotExist(err) {
		t.Errorf("expected %s to be deleted", gone)
	}
	content, _ := os.ReadFile(doc)
	if string(content) != "new" {
		t.Errorf("expected replaced content, got %q", content)
	}
	if _, err := os.Stat(doc + ".dest"); !os.IsNotExist(err) {
		t.Error("temp file should be consumed by commit")
	}

	if err := plan.Commit(); err == nil {
		t.Error("second commit should fail")
	}
}

func TestDeletionPlan_Discard(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "colors.xml")
	writeFile(t, doc, "old")
	writeFile(t, doc+".dest", "new")

	plan := NewDeletionPlan()
	plan.Replace(doc, doc+".dest")
	plan.Discard()

	content, _ := os.ReadFile(doc)
	if string(content) != "old" {
		t.Errorf("original must be untouched, got %q", content)
	}
	if _, err := os.Stat(doc + ".dest"); !os.IsNotExist(err) {
		t.Error("temp file should be removed by discard")
	}
}

func TestDeletionPlan_ContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "dimens.xml")
	kept := filepath.Join(dir, "kept.png")
	writeFile(t, doc, "old")
	writeFile(t, kept, "png")

	plan := NewDeletionPlan()
	plan.Replace(doc, filepath.Join(dir, "missing.dest"))
	plan.Remove(kept)

	if err := plan.Commit(); err == nil {
		t.Error("expected error for missing temp file")
	}
	if _, err := os.Stat(kept); !os.IsNotExist(err) {
		t.Error("remaining operations should still run")
	}
}

func TestDeletionPlan_Exclude(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	plan := NewDeletionPlan()
	plan.Remove(a)
	plan.Remove(b)
	plan.Exclude(a)

	if plan.Len() != 1 || plan.Paths()[0] != b {
		t.Fatalf("unexpected plan %v", plan.Paths())
	}
	if err := plan.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if _, err := os.Stat(a); err != nil {
		t.Error("excluded file must survive")
	}
}

func TestDeletionPlan_Entries(t *testing.T) {
	plan := NewDeletionPlan()
	plan.Remove("/res/a.png")
	plan.Replace("/res/values/colors.xml", "/res/values/colors.xml.dest")

	got := plan.Entries()
	want := []domain.PlanEntry{
		{Path: "/res/a.png"},
		{Path: "/res/values/colors.xml", TempPath: "/res/values/colors.xml.dest"},
	}
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
