package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resprune/internal/domain"
)

// fakeGit replaces the git binary with a shell script
func fakeGit(script string, calls *[][]string) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if calls != nil {
			*calls = append(*calls, args)
		}
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
}

func TestCurrentRevision(t *testing.T) {
	repo := NewRepository(t.TempDir())
	var calls [][]string
	repo.commandContext = fakeGit("echo 4f2a9c1e", &calls)

	rev, err := repo.CurrentRevision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4f2a9c1e", rev)
	assert.Equal(t, [][]string{{"rev-parse", "HEAD"}}, calls)
}

func TestChangedFiles(t *testing.T) {
	tests := []struct {
		kind   domain.ChangeKind
		filter string
	}{
		{domain.ChangeChanged, "--diff-filter=M"},
		{domain.ChangeNew, "--diff-filter=A"},
		{domain.ChangeDeleted, "--diff-filter=D"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			repo := NewRepository(t.TempDir())
			var calls [][]string
			repo.commandContext = fakeGit(`printf 'app/src/main/A.kt\n\napp/src/main/res/layout/b.xml\n'`, &calls)

			paths, err := repo.ChangedFiles(context.Background(), "old", "new", tt.kind)
			require.NoError(t, err)
			assert.Equal(t, []string{"app/src/main/A.kt", "app/src/main/res/layout/b.xml"}, paths)
			assert.Equal(t, []string{"diff", "old", "new", "--name-only", "--no-renames", tt.filter}, calls[0])
		})
	}
}

func TestNonZeroExitCarriesCode(t *testing.T) {
	repo := NewRepository(t.TempDir())
	repo.commandContext = fakeGit("echo 'fatal: bad revision' >&2; exit 128", nil)

	_, err := repo.CurrentRevision(context.Background())
	require.Error(t, err)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 128, cmdErr.ExitCode())
	assert.Contains(t, err.Error(), "fatal: bad revision")

	withCode, ok := err.(interface{ ExitCode() int })
	require.True(t, ok)
	assert.Equal(t, 128, withCode.ExitCode())
}

func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	base := []string{"-c", "user.name=resprune", "-c", "user.email=resprune@example.com", "-c", "commit.gpgsign=false"}
	cmd := exec.Command("git", append(base, args...)...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func TestChangedFiles_RenameIsDeleteAndAdd(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	gitIn(t, dir, "init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Old.kt"), []byte("val logo = R.drawable.logo\n"), 0644))
	gitIn(t, dir, "add", ".")
	gitIn(t, dir, "commit", "-q", "-m", "add Old.kt")
	gitIn(t, dir, "mv", "Old.kt", "New.kt")
	gitIn(t, dir, "commit", "-q", "-m", "rename to New.kt")

	repo := NewRepository(dir)
	ctx := context.Background()

	changed, err := repo.ChangedFiles(ctx, "HEAD~1", "HEAD", domain.ChangeChanged)
	require.NoError(t, err)
	added, err := repo.ChangedFiles(ctx, "HEAD~1", "HEAD", domain.ChangeNew)
	require.NoError(t, err)
	deleted, err := repo.ChangedFiles(ctx, "HEAD~1", "HEAD", domain.ChangeDeleted)
	require.NoError(t, err)

	assert.Empty(t, changed)
	assert.Equal(t, []string{"New.kt"}, added)
	assert.Equal(t, []string{"Old.kt"}, deleted)
}
