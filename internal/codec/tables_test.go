package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wishbone/pkg/domain"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadBranchesSortedByCell(t *testing.T) {
	path := writeFixture(t, "branch.json", `{"B":1,"A":0,"C":1}`)

	rows, err := ReadBranches(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.BranchAssignment{
		{CellID: "A", Branch: 0},
		{CellID: "B", Branch: 1},
		{CellID: "C", Branch: 1},
	}, rows)
}

func TestReadTrajectorySortedByCell(t *testing.T) {
	path := writeFixture(t, "trajectory.json", `{"B":0.9,"A":0.1}`)

	rows, err := ReadTrajectory(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.PseudoTime{
		{CellID: "A", Time: 0.1},
		{CellID: "B", Time: 0.9},
	}, rows)
}

func TestReadScalarMapMalformed(t *testing.T) {
	path := writeFixture(t, "branch.json", `{"A":`)

	_, err := ReadBranches(path)
	assert.Error(t, err)
}

func TestReadScalarMapMissingFile(t *testing.T) {
	_, err := ReadTrajectory(filepath.Join(t.TempDir(), "trajectory.json"))
	assert.Error(t, err)
}

func TestReadEmbedding(t *testing.T) {
	path := writeFixture(t, "dm.csv", "cell_id,Comp1,Comp2\nA,0.0,0.0\nB,1.0,1.0\n")

	emb, err := ReadEmbedding(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cell_id", "Comp1", "Comp2"}, emb.Columns)
	assert.Equal(t, []domain.EmbeddingRow{
		{CellID: "A", Coords: []float64{0, 0}},
		{CellID: "B", Coords: []float64{1, 1}},
	}, emb.Rows)
}

func TestReadEmbeddingRaggedRow(t *testing.T) {
	path := writeFixture(t, "dm.csv", "cell_id,Comp1,Comp2\nA,0.0\n")

	_, err := ReadEmbedding(path)
	assert.Error(t, err)
}

func TestReadEmbeddingNonNumericCoordinate(t *testing.T) {
	path := writeFixture(t, "dm.csv", "cell_id,Comp1\nA,oops\n")

	_, err := ReadEmbedding(path)
	assert.Error(t, err)
}

func TestReadEmbeddingMissingCoordinateColumns(t *testing.T) {
	path := writeFixture(t, "dm.csv", "cell_id\nA\n")

	_, err := ReadEmbedding(path)
	assert.Error(t, err)
}

func TestExportRoundTrips(t *testing.T) {
	dir := t.TempDir()

	branches := []domain.BranchAssignment{{CellID: "A", Branch: 0}, {CellID: "B", Branch: 1}}
	bp := filepath.Join(dir, "branch.tsv")
	require.NoError(t, WriteBranches(bp, branches))
	data, err := os.ReadFile(bp)
	require.NoError(t, err)
	assert.Equal(t, "cell_id\tbranch\nA\t0\nB\t1\n", string(data))

	times := []domain.PseudoTime{{CellID: "A", Time: 0.1}, {CellID: "B", Time: 0.9}}
	tp := filepath.Join(dir, "trajectory.tsv")
	require.NoError(t, WriteTrajectory(tp, times))
	data, err = os.ReadFile(tp)
	require.NoError(t, err)
	assert.Equal(t, "cell_id\ttrajectory\nA\t0.1\nB\t0.9\n", string(data))

	emb := domain.Embedding{
		Columns: []string{"cell_id", "Comp1", "Comp2"},
		Rows: []domain.EmbeddingRow{
			{CellID: "A", Coords: []float64{0, 0.5}},
			{CellID: "B", Coords: []float64{1, 1.25}},
		},
	}
	ep := filepath.Join(dir, "embedding.csv")
	require.NoError(t, WriteEmbedding(ep, emb))
	got, err := ReadEmbedding(ep)
	require.NoError(t, err)
	assert.Equal(t, emb, got)
}
