package codec

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/aretw0/wishbone/pkg/domain"
)

// readScalarMap loads a flat JSON object of cell id to scalar and returns its
// keys in sorted order alongside the map. Sorting makes the flattened tables
// deterministic regardless of map iteration order.
func readScalarMap(path string) ([]string, map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	values := make(map[string]float64)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, values, nil
}

// ReadBranches flattens branch.json into a two-column table sorted by cell id.
func ReadBranches(path string) ([]domain.BranchAssignment, error) {
	keys, values, err := readScalarMap(path)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.BranchAssignment, 0, len(keys))
	for _, id := range keys {
		rows = append(rows, domain.BranchAssignment{CellID: id, Branch: int(values[id])})
	}
	return rows, nil
}

// ReadTrajectory flattens trajectory.json into a two-column table sorted by
// cell id.
func ReadTrajectory(path string) ([]domain.PseudoTime, error) {
	keys, values, err := readScalarMap(path)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.PseudoTime, 0, len(keys))
	for _, id := range keys {
		rows = append(rows, domain.PseudoTime{CellID: id, Time: values[id]})
	}
	return rows, nil
}

// ReadEmbedding parses dm.csv: a header row naming the columns, then one row
// per cell with the cell id first and the numeric coordinates after it. The
// csv reader enforces a uniform column count, so ragged rows surface as parse
// errors.
func ReadEmbedding(path string) (domain.Embedding, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("read embedding: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return domain.Embedding{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return domain.Embedding{}, fmt.Errorf("parse %s: need a header with at least one coordinate column", path)
	}

	emb := domain.Embedding{Columns: records[0]}
	for _, rec := range records[1:] {
		row := domain.EmbeddingRow{CellID: rec[0], Coords: make([]float64, len(rec)-1)}
		for j, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return domain.Embedding{}, fmt.Errorf("parse %s: cell %q column %q: %w", path, rec[0], records[0][j+1], err)
			}
			row.Coords[j] = v
		}
		emb.Rows = append(emb.Rows, row)
	}
	return emb, nil
}
