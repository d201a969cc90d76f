package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wishbone/pkg/domain"
)

func testMatrix() *domain.CountMatrix {
	return &domain.CountMatrix{
		CellIDs:  []string{"A", "B"},
		Features: []string{"GeneA", "GeneB", "GeneC"},
		Values: [][]float64{
			{3, 0, 1.5},
			{0.25, 7, 0},
		},
	}
}

func TestCountsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.tsv")
	m := testMatrix()

	require.NoError(t, WriteCounts(path, m))

	got, err := ReadCounts(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestWriteCountsHeaderAndValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.tsv")
	require.NoError(t, WriteCounts(path, testMatrix()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "cell_id\tGeneA\tGeneB\tGeneC", lines[0])
	assert.Equal(t, "A\t3\t0\t1.5", lines[1])
	assert.Equal(t, "B\t0.25\t7\t0", lines[2])
}

func TestReadCountsRejectsNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.tsv")
	require.NoError(t, os.WriteFile(path, []byte("cell_id\tg1\nA\tnot-a-number\n"), 0o600))

	_, err := ReadCounts(path)
	assert.Error(t, err)
}

func TestReadCountsRejectsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.tsv")
	require.NoError(t, os.WriteFile(path, []byte("cell_id\tg1\n"), 0o600))

	_, err := ReadCounts(path)
	assert.Error(t, err)
}
