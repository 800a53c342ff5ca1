package views

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resprune/internal/adapters/filesystem"
)

func press(m *ReviewModel, keys string) tea.Msg {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	if cmd == nil {
		return nil
	}
	return cmd()
}

func stagedPlan(t *testing.T) (*filesystem.DeletionPlan, string) {
	t.Helper()
	root := t.TempDir()
	res := filepath.Join(root, "app", "src", "main", "res")
	require.NoError(t, os.MkdirAll(filepath.Join(res, "values"), 0755))

	colors := filepath.Join(res, "values", "colors.xml")
	require.NoError(t, os.WriteFile(colors+".dest", []byte("<resources/>"), 0644))

	plan := filesystem.NewDeletionPlan()
	plan.Remove(filepath.Join(res, "drawable", "logo.png"))
	plan.Replace(colors, colors+".dest")
	plan.Remove(filepath.Join(res, "layout", "old.xml"))
	return plan, root
}

func TestReviewModel_Navigation(t *testing.T) {
	plan, root := stagedPlan(t)
	m := NewReviewModel(plan, root)

	entry, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "logo.png", filepath.Base(entry.Path))

	press(m, "j")
	press(m, "j")
	press(m, "j")
	entry, _ = m.Selected()
	assert.Equal(t, "old.xml", filepath.Base(entry.Path))

	press(m, "k")
	entry, _ = m.Selected()
	assert.Equal(t, "colors.xml", filepath.Base(entry.Path))
}

func TestReviewModel_ExcludeKeepsFile(t *testing.T) {
	plan, root := stagedPlan(t)
	m := NewReviewModel(plan, root)

	press(m, "j")
	press(m, "x")

	require.Len(t, m.Entries(), 2)
	assert.Equal(t, 2, plan.Len())
	for _, e := range plan.Entries() {
		assert.NotEqual(t, "colors.xml", filepath.Base(e.Path))
	}
	assert.Contains(t, m.Message, filepath.Join("app", "src", "main", "res", "values", "colors.xml"))
	assert.False(t, m.MessageErr)

	entry, _ := m.Selected()
	assert.Equal(t, "old.xml", filepath.Base(entry.Path))
}

func TestReviewModel_EditOpensRewrittenCopy(t *testing.T) {
	plan, root := stagedPlan(t)
	m := NewReviewModel(plan, root)

	msg := press(m, "e")
	require.IsType(t, OpenEditorMsg{}, msg)
	assert.Equal(t, "logo.png", filepath.Base(msg.(OpenEditorMsg).Path))

	press(m, "j")
	msg = press(m, "e")
	assert.Equal(t, "colors.xml.dest", filepath.Base(msg.(OpenEditorMsg).Path))
}

func TestReviewModel_Copy(t *testing.T) {
	plan, root := stagedPlan(t)
	m := NewReviewModel(plan, root)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	press(m, "c")
	assert.Equal(t, plan.Entries()[0].Path, copied)
	assert.False(t, m.MessageErr)

	m.copyText = func(string) error { return errors.New("no display") }
	press(m, "c")
	assert.True(t, m.MessageErr)
	assert.Contains(t, m.Message, "no display")
}

func TestReviewModel_ApplyAsksForConfirmation(t *testing.T) {
	plan, root := stagedPlan(t)
	m := NewReviewModel(plan, root)

	assert.Nil(t, press(m, "a"))
	assert.Contains(t, m.View(), "Apply 3 operations?")

	assert.Nil(t, press(m, "n"))
	assert.NotContains(t, m.View(), "Apply 3 operations?")

	press(m, "a")
	assert.Equal(t, CommitPlanMsg{}, press(m, "y"))
}

func TestReviewModel_ApplyEmptyPlan(t *testing.T) {
	m := NewReviewModel(filesystem.NewDeletionPlan(), t.TempDir())

	assert.Nil(t, press(m, "a"))
	assert.True(t, m.MessageErr)
	assert.Contains(t, m.View(), "Nothing staged.")
}

func TestReviewModel_QuitCancels(t *testing.T) {
	plan, root := stagedPlan(t)
	m := NewReviewModel(plan, root)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelPlanMsg{}, cmd())
	assert.Equal(t, SwitchToHelpMsg{}, press(m, "?"))
}
