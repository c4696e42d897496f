package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/verdant/internal/document"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not markdown")
	writeFile(t, filepath.Join(dir, "nested", "b.md"), "# B")

	paths, err := NewLoader(nil).Discover(dir)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "a.md", filepath.Base(paths[0]))
	assert.Equal(t, "b.md", filepath.Base(paths[1]))
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := NewLoader(nil).Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	writeFile(t, path, "# Title\nbody\n")

	docs := NewLoader(nil).Load([]string{path})

	require.Len(t, docs, 1)
	assert.Equal(t, "doc.md", docs[0].Name)
	assert.Equal(t, "# Title\nbody\n", docs[0].RawContent)
	assert.WithinDuration(t, time.Now(), docs[0].ModifiedAt, time.Minute)
}

func TestLoad_SkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	writeFile(t, good, "ok")

	docs := NewLoader(nil).Load([]string{filepath.Join(dir, "missing.md"), good})

	require.Len(t, docs, 1)
	assert.Equal(t, "good.md", docs[0].Name)
}

func TestSortChronological(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	docs := []document.Document{
		{Name: "newest.md", ModifiedAt: base.Add(2 * time.Hour)},
		{Name: "oldest.md", ModifiedAt: base},
		{Name: "tie-a.md", ModifiedAt: base.Add(time.Hour)},
		{Name: "tie-b.md", ModifiedAt: base.Add(time.Hour)},
	}

	SortChronological(docs)

	assert.Equal(t, "oldest.md", docs[0].Name)
	assert.Equal(t, "tie-a.md", docs[1].Name)
	assert.Equal(t, "tie-b.md", docs[2].Name)
	assert.Equal(t, "newest.md", docs[3].Name)
}
