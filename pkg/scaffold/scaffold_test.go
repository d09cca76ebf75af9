package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BRArjun/zor/pkg/types"
)

func TestRunNoneIsNoOp(t *testing.T) {
	t.Chdir(t.TempDir())

	plan := &types.ProjectPlan{ScaffoldType: types.ScaffoldNone}
	result, err := Run(context.Background(), plan, "whatever")

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, result.Failed())
}

func TestRunNeedsEmptyDirRejectsNonEmpty(t *testing.T) {
	t.Chdir(t.TempDir())
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0644))

	plan := &types.ProjectPlan{
		ScaffoldType:    types.ScaffoldNeedsEmptyDir,
		ScaffoldCommand: "echo should not run",
	}
	_, err := Run(context.Background(), plan, target)

	require.ErrorIs(t, err, ErrDirectoryNotEmpty)
}

func TestRunNeedsEmptyDirCreatesMissingTarget(t *testing.T) {
	t.Chdir(t.TempDir())
	target := filepath.Join(t.TempDir(), "fresh")

	plan := &types.ProjectPlan{
		ScaffoldType:    types.ScaffoldNeedsEmptyDir,
		ScaffoldCommand: "touch made.txt",
	}
	result, err := Run(context.Background(), plan, target)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.FileExists(t, filepath.Join(target, "made.txt"))
}

func TestRunInPlaceCapturesOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	target := t.TempDir()

	plan := &types.ProjectPlan{
		ScaffoldType:    types.ScaffoldInPlace,
		ScaffoldCommand: "echo hello from scaffold",
	}
	result, err := Run(context.Background(), plan, target)

	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.Contains(t, result.Output, "hello from scaffold")
	assert.Equal(t, target, result.Dir)
}

func TestRunCreatesOwnDirRunsInParent(t *testing.T) {
	t.Chdir(t.TempDir())
	parent := t.TempDir()
	target := filepath.Join(parent, "proj")

	plan := &types.ProjectPlan{
		ScaffoldType:    types.ScaffoldCreatesOwnDir,
		ScaffoldCommand: "mkdir proj",
	}
	result, err := Run(context.Background(), plan, target)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.DirExists(t, target)
}

func TestRunReportsNonZeroExitWithoutRaising(t *testing.T) {
	t.Chdir(t.TempDir())
	target := t.TempDir()

	plan := &types.ProjectPlan{
		ScaffoldType:    types.ScaffoldInPlace,
		ScaffoldCommand: "exit 7",
	}
	result, err := Run(context.Background(), plan, target)

	require.NoError(t, err, "non-zero exit is reported, not raised")
	assert.True(t, result.Failed())
	assert.Equal(t, 7, result.ExitCode)
}
