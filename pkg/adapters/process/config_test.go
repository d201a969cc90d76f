package process

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wishbone/pkg/domain"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "pipeline.yaml", `
command: /opt/wishbone/venv/bin/python
args: ["-u", "/opt/wishbone/run_wishbone.py"]
env:
  WISHBONE_HOME: /opt/wishbone
defaults:
  k: "20"
  num_waypoints: 150
  branch: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/wishbone/venv/bin/python", cfg.Command)
	assert.Equal(t, []string{"-u", "/opt/wishbone/run_wishbone.py"}, cfg.Args)
	assert.Equal(t, "/opt/wishbone", cfg.Env["WISHBONE_HOME"])

	// Defaults decode weakly typed: "20" lands in an int field.
	run := domain.RunConfig{Branch: true}
	require.NoError(t, cfg.DecodeDefaults(&run))
	assert.Equal(t, 20, run.K)
	assert.Equal(t, 150, run.NumWaypoints)
	assert.False(t, run.Branch)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "pipeline.json", `{"command":"wishbone-run","args":["--quiet"]}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "wishbone-run", cfg.Command)
	assert.Equal(t, []string{"--quiet"}, cfg.Args)
}

func TestLoadRejectsMissingCommand(t *testing.T) {
	path := writeConfig(t, "pipeline.yaml", `args: ["run"]`)

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrNoCommand)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "pipeline.yaml"))
	assert.Error(t, err)
}

func TestDecodeDefaultsEmpty(t *testing.T) {
	run := domain.RunConfig{StartCell: "C1"}
	require.NoError(t, Config{}.DecodeDefaults(&run))
	assert.Equal(t, "C1", run.StartCell)
}
