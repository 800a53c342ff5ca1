package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resprune/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex()
	require.NoError(t, idx.Open(filepath.Join(t.TempDir(), ".index")))
	t.Cleanup(func() { idx.Close() })
	return idx
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIndex_RefreshAndContains(t *testing.T) {
	idx := openTestIndex(t)
	src := t.TempDir()

	main := writeSource(t, src, "MainActivity.kt", `
		val binding = ActivityMainBinding.inflate(layoutInflater)
		image.setImageResource(R.drawable.ic_logo)
	`)
	layout := writeSource(t, src, "activity_main.xml", `<TextView android:textColor="@color/primary"/>`)

	stats, err := idx.Refresh(context.Background(), []domain.ChangeRecord{
		{Path: main, Kind: domain.ChangeNew},
		{Path: layout, Kind: domain.ChangeNew},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Added)

	tests := []struct {
		term string
		want bool
	}{
		{"ic_logo", true},
		{"R.drawable.ic_logo", true},
		{"ActivityMainBinding.inflate", true},
		{`ActivityMainBinding\:\:inflate`, true},
		{"@color/primary", true},
		{"R.color.primary", false},
		{"ic_missing", false},
		{"activitymainbinding", true},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			found, err := idx.Contains(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)
		})
	}
}

func TestIndex_ContainsExcludesOwners(t *testing.T) {
	idx := openTestIndex(t)
	src := t.TempDir()

	colors := writeSource(t, src, "res/values/colors.xml", `<resources><color name="accent">#fff</color></resources>`)
	_, err := idx.Refresh(context.Background(), []domain.ChangeRecord{{Path: colors, Kind: domain.ChangeNew}})
	require.NoError(t, err)

	found, err := idx.Contains("accent")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = idx.Contains("accent", colors)
	require.NoError(t, err)
	assert.False(t, found, "hits from the declaring document must not count")

	sources, err := idx.Sources("accent")
	require.NoError(t, err)
	assert.Equal(t, []string{colors}, sources)
}

func TestIndex_ChangedReplacesInPlace(t *testing.T) {
	idx := openTestIndex(t)
	src := t.TempDir()
	path := writeSource(t, src, "Home.kt", "R.raw.intro")

	_, err := idx.Refresh(context.Background(), []domain.ChangeRecord{{Path: path, Kind: domain.ChangeNew}})
	require.NoError(t, err)

	writeSource(t, src, "Home.kt", "R.raw.outro")
	stats, err := idx.Refresh(context.Background(), []domain.ChangeRecord{{Path: path, Kind: domain.ChangeChanged}})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Updated)

	found, err := idx.Contains("intro")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = idx.Contains("R.raw.outro")
	require.NoError(t, err)
	assert.True(t, found)

	st, err := idx.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Documents)
	assert.Equal(t, 3, st.Tokens)
}

func TestIndex_DeleteAndMissing(t *testing.T) {
	idx := openTestIndex(t)
	src := t.TempDir()
	a := writeSource(t, src, "A.kt", "alpha")
	b := writeSource(t, src, "B.kt", "beta")

	_, err := idx.Refresh(context.Background(), []domain.ChangeRecord{
		{Path: a, Kind: domain.ChangeNew},
		{Path: b, Kind: domain.ChangeNew},
	})
	require.NoError(t, err)

	require.NoError(t, os.Remove(b))
	stats, err := idx.Refresh(context.Background(), []domain.ChangeRecord{
		{Path: a, Kind: domain.ChangeDeleted},
		{Path: b, Kind: domain.ChangeChanged},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Deleted)
	assert.Equal(t, 1, stats.Missing)

	st, err := idx.Stats()
	require.NoError(t, err)
	assert.Zero(t, st.Documents)
	assert.Zero(t, st.Tokens)
}

func TestIndex_RefreshIsAtomic(t *testing.T) {
	idx := openTestIndex(t)
	src := t.TempDir()
	a := writeSource(t, src, "A.kt", "alpha")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := idx.Refresh(ctx, []domain.ChangeRecord{{Path: a, Kind: domain.ChangeNew}})
	require.ErrorIs(t, err, context.Canceled)

	st, err := idx.Stats()
	require.NoError(t, err)
	assert.Zero(t, st.Documents)
}

func TestIndex_QuerySyntaxError(t *testing.T) {
	idx := openTestIndex(t)

	_, err := idx.Contains("Binding::bind")
	assert.ErrorIs(t, err, domain.ErrQuerySyntax)

	_, err = idx.Sources("foo(")
	assert.ErrorIs(t, err, domain.ErrQuerySyntax)
}

func TestIndex_ReopenKeepsDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".index")
	src := t.TempDir()
	path := writeSource(t, src, "A.kt", "alpha")

	idx := NewIndex()
	require.NoError(t, idx.Open(dir))
	_, err := idx.Refresh(context.Background(), []domain.ChangeRecord{{Path: path, Kind: domain.ChangeNew}})
	require.NoError(t, err)
	require.NoError(t, idx.Close())

	reopened := NewIndex()
	require.NoError(t, reopened.Open(dir))
	defer reopened.Close()

	assert.False(t, reopened.NeedsFullRebuild())
	found, err := reopened.Contains("alpha")
	require.NoError(t, err)
	assert.True(t, found)
}
