package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resprune/internal/adapters/filesystem"
	"resprune/internal/adapters/tui/views"
	"resprune/internal/application/commands"
)

func stagingRun(plan *filesystem.DeletionPlan, paths ...string) RunFunc {
	return func(context.Context) (*commands.RemoveUnusedResult, error) {
		for _, p := range paths {
			plan.Remove(p)
		}
		return &commands.RemoveUnusedResult{Staged: len(paths) > 0}, nil
	}
}

func finishPass(t *testing.T, app *App) tea.Cmd {
	t.Helper()
	result, err := app.run(context.Background())
	_, cmd := app.Update(passDoneMsg{result: result, err: err})
	return cmd
}

func TestApp_ReviewAndApply(t *testing.T) {
	root := t.TempDir()
	unused := filepath.Join(root, "logo.png")
	require.NoError(t, os.WriteFile(unused, []byte("png"), 0644))

	plan := filesystem.NewDeletionPlan()
	app := NewApp(context.Background(), stagingRun(plan, unused), plan, root, nil)
	assert.Equal(t, ViewLoading, app.State())

	assert.Nil(t, finishPass(t, app))
	assert.Equal(t, ViewReview, app.State())
	assert.Contains(t, app.View(), "logo.png")

	_, cmd := app.Update(views.CommitPlanMsg{})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, ViewDone, app.State())
	assert.True(t, app.Outcome().Applied)
	assert.NoFileExists(t, unused)
}

func TestApp_NothingStagedQuits(t *testing.T) {
	plan := filesystem.NewDeletionPlan()
	app := NewApp(context.Background(), stagingRun(plan), plan, t.TempDir(), nil)

	assert.NotNil(t, finishPass(t, app))
	assert.Equal(t, ViewDone, app.State())
	assert.Contains(t, app.Outcome().Summary(), "No unused resources found")
}

func TestApp_PassError(t *testing.T) {
	plan := filesystem.NewDeletionPlan()
	run := func(context.Context) (*commands.RemoveUnusedResult, error) {
		return nil, errors.New("index is locked")
	}
	app := NewApp(context.Background(), run, plan, t.TempDir(), nil)

	finishPass(t, app)
	assert.Equal(t, ViewDone, app.State())
	assert.Contains(t, app.Outcome().Summary(), "index is locked")
}

func TestApp_CancelDiscardsPlan(t *testing.T) {
	root := t.TempDir()
	doc := filepath.Join(root, "colors.xml")
	temp := doc + ".dest"
	require.NoError(t, os.WriteFile(doc, []byte("<resources/>"), 0644))
	require.NoError(t, os.WriteFile(temp, []byte("<resources/>"), 0644))

	plan := filesystem.NewDeletionPlan()
	run := func(context.Context) (*commands.RemoveUnusedResult, error) {
		plan.Replace(doc, temp)
		return &commands.RemoveUnusedResult{Staged: true}, nil
	}
	app := NewApp(context.Background(), run, plan, root, nil)
	finishPass(t, app)

	app.Update(views.CancelPlanMsg{})
	assert.True(t, app.Outcome().Cancelled)
	assert.Equal(t, 0, plan.Len())
	assert.NoFileExists(t, temp)
	assert.FileExists(t, doc)
}

func TestApp_HelpRoundTrip(t *testing.T) {
	root := t.TempDir()
	plan := filesystem.NewDeletionPlan()
	app := NewApp(context.Background(), stagingRun(plan, filepath.Join(root, "a.png")), plan, root, nil)
	finishPass(t, app)

	app.Update(views.SwitchToHelpMsg{})
	assert.Equal(t, ViewHelp, app.State())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	app.Update(cmd())
	assert.Equal(t, ViewReview, app.State())
}
