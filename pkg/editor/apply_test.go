package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BRArjun/zor/pkg/types"
)

func newSet(edits ...types.FileEdit) *types.EditSet {
	set := types.NewEditSet()
	for _, e := range edits {
		set.Add(e)
	}
	return set
}

func TestApplyCreatesMissingDirectoriesAndFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	root := t.TempDir()

	set := newSet(
		types.FileEdit{Path: "src/app.py", Content: `print("hi")`},
		types.FileEdit{Path: "a/b/c/deep.txt", Content: "nested"},
	)

	report := Apply(set, root)

	require.True(t, report.Ok(), "report: %+v", report)
	assert.ElementsMatch(t, []string{"src/app.py", "a/b/c/deep.txt"}, report.Applied)

	data, err := os.ReadFile(filepath.Join(root, "src", "app.py"))
	require.NoError(t, err)
	assert.Equal(t, `print("hi")`, string(data))

	data, err = os.ReadFile(filepath.Join(root, "a", "b", "c", "deep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "nested", string(data))
}

func TestApplyOverwritesExistingFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	root := t.TempDir()

	target := filepath.Join(root, "main.go")
	require.NoError(t, os.WriteFile(target, []byte("old content"), 0644))

	report := Apply(newSet(types.FileEdit{Path: "main.go", Content: "new content"}), root)

	require.True(t, report.Ok())
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data), "existing file must be fully overwritten, not merged")
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Chdir(t.TempDir())
	root := t.TempDir()

	set := newSet(types.FileEdit{Path: "x/y.txt", Content: "stable"})

	require.True(t, Apply(set, root).Ok())
	require.True(t, Apply(set, root).Ok())

	data, err := os.ReadFile(filepath.Join(root, "x", "y.txt"))
	require.NoError(t, err)
	assert.Equal(t, "stable", string(data))
}

func TestApplyRejectsEscapingPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	root := t.TempDir()

	set := newSet(
		types.FileEdit{Path: "../escape.txt", Content: "x"},
		types.FileEdit{Path: "ok.txt", Content: "y"},
	)

	report := Apply(set, root)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "../escape.txt", report.Failed[0].Path)
	assert.Equal(t, []string{"ok.txt"}, report.Applied)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(root), "escape.txt"))
}

func TestApplyContinuesPastPerFileFailures(t *testing.T) {
	t.Chdir(t.TempDir())
	root := t.TempDir()

	// A directory at the edit's path makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(root, "blocker"), 0755))

	set := newSet(
		types.FileEdit{Path: "blocker", Content: "cannot write"},
		types.FileEdit{Path: "after.txt", Content: "still written"},
	)

	report := Apply(set, root)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, "blocker", report.Failed[0].Path)
	assert.Equal(t, []string{"after.txt"}, report.Applied)

	data, err := os.ReadFile(filepath.Join(root, "after.txt"))
	require.NoError(t, err)
	assert.Equal(t, "still written", string(data))
}
