package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAllocatesUniqueDirectories(t *testing.T) {
	root := t.TempDir()

	a, err := Create(root)
	require.NoError(t, err)
	b, err := Create(root)
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
	assert.NotEqual(t, a.ID, b.ID)

	info, err := os.Stat(a.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCleanupRemovesEverything(t *testing.T) {
	ws, err := Create(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(ws.CountsPath(), []byte("cell_id\tg1\n"), 0o600))
	require.NoError(t, ws.Cleanup())

	_, err = os.Stat(ws.Path)
	assert.True(t, os.IsNotExist(err))

	// Safe to call again.
	require.NoError(t, ws.Cleanup())
}

func TestCreateFallsBackToSystemTemp(t *testing.T) {
	ws, err := Create("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Cleanup() })

	assert.True(t, strings.HasPrefix(ws.Path, os.TempDir()))
}

func TestArtifactPaths(t *testing.T) {
	ws := &Workspace{Path: filepath.Join("work", "run")}

	assert.Equal(t, filepath.Join("work", "run", "counts.tsv"), ws.CountsPath())
	assert.Equal(t, filepath.Join("work", "run", "params.json"), ws.ParamsPath())
	assert.Equal(t, filepath.Join("work", "run", "branch.json"), ws.BranchPath())
	assert.Equal(t, filepath.Join("work", "run", "trajectory.json"), ws.TrajectoryPath())
	assert.Equal(t, filepath.Join("work", "run", "dm.csv"), ws.EmbeddingPath())
}
