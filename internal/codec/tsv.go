// Package codec reads and writes the file formats of the pipeline contract:
// the tab-separated counts matrix, the params.json parameter document and the
// three output artifacts (branch.json, trajectory.json, dm.csv).
package codec

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/wishbone/pkg/domain"
)

// cellColumn is the header name of the row-label column in counts.tsv and the
// derived output tables.
const cellColumn = "cell_id"

// WriteCounts writes the matrix as tab-separated text: a header row with the
// feature names, then one row per cell. Values are formatted with the
// shortest representation that round-trips, so nothing is lost across the
// process boundary.
func WriteCounts(path string, m *domain.CountMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write counts: %w", err)
	}
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "%s\t%s\n", cellColumn, strings.Join(m.Features, "\t"))
	for i, id := range m.CellIDs {
		w.WriteString(id)
		for _, v := range m.Values[i] {
			w.WriteByte('\t')
			w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write counts: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write counts: %w", err)
	}
	return nil
}

// ReadCounts parses a tab-separated counts file in the shape WriteCounts
// emits: header row of feature names, first column cell identifiers.
func ReadCounts(path string) (*domain.CountMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read counts: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read counts %s: %w", path, err)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("read counts %s: need a header row and at least one cell row", path)
	}

	m := &domain.CountMatrix{Features: records[0][1:]}
	for _, rec := range records[1:] {
		m.CellIDs = append(m.CellIDs, rec[0])
		row := make([]float64, len(rec)-1)
		for j, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("read counts %s: cell %q column %q: %w", path, rec[0], records[0][j+1], err)
			}
			row[j] = v
		}
		m.Values = append(m.Values, row)
	}
	return m, m.Validate()
}
