// Package workspace manages the private working directory of one pipeline
// run: a uniquely named scope holding every intermediate and output file,
// removed unconditionally when the run ends.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is an ephemeral directory owned exclusively by one invocation.
type Workspace struct {
	// ID is the unique run identifier embedded in the directory name.
	ID string
	// Path is the absolute directory path handed to the external pipeline.
	Path string
}

// Create allocates a fresh working directory under root. An empty root falls
// back to the system temp directory.
func Create(root string) (*Workspace, error) {
	if root == "" {
		root = os.TempDir()
	}
	id := uuid.NewString()
	path := filepath.Join(root, "wishbone-"+id)
	if err := os.Mkdir(path, 0o700); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{ID: id, Path: path}, nil
}

// Cleanup removes the directory and everything in it. Safe to call more than
// once.
func (w *Workspace) Cleanup() error {
	if err := os.RemoveAll(w.Path); err != nil {
		return fmt.Errorf("remove workspace %s: %w", w.Path, err)
	}
	return nil
}

// Input files staged for the pipeline.

func (w *Workspace) CountsPath() string { return filepath.Join(w.Path, "counts.tsv") }
func (w *Workspace) ParamsPath() string { return filepath.Join(w.Path, "params.json") }

// Output artifacts the pipeline writes back.

func (w *Workspace) BranchPath() string     { return filepath.Join(w.Path, "branch.json") }
func (w *Workspace) TrajectoryPath() string { return filepath.Join(w.Path, "trajectory.json") }
func (w *Workspace) EmbeddingPath() string  { return filepath.Join(w.Path, "dm.csv") }
