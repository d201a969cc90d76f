package domain

// BranchAssignment ties a cell to the discrete trajectory branch it was
// assigned to.
type BranchAssignment struct {
	CellID string
	Branch int
}

// PseudoTime is a cell's inferred position along the trajectory.
type PseudoTime struct {
	CellID string
	Time   float64
}

// EmbeddingRow is one cell's coordinates in the diffusion-map space.
type EmbeddingRow struct {
	CellID string
	Coords []float64
}

// Embedding is the low-dimensional coordinate table. Columns holds the header
// as emitted by the pipeline ("cell_id", "Comp1", ... "CompN"); every row
// carries len(Columns)-1 coordinates.
type Embedding struct {
	Columns []string
	Rows    []EmbeddingRow
}

// Result bundles the three artifacts of a successful run. A failed run never
// yields a partial Result.
type Result struct {
	Branches   []BranchAssignment
	Trajectory []PseudoTime
	Embedding  Embedding
}
