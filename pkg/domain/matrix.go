package domain

import "fmt"

// CountMatrix is a rectangular matrix of numeric counts.
// Rows are cells, columns are features. Values pass through to the external
// pipeline verbatim; no normalization or scaling happens on this side.
type CountMatrix struct {
	CellIDs  []string
	Features []string
	Values   [][]float64
}

// Validate checks the matrix shape. It returns ErrEmptyMatrix when there are
// no cells or no features, and ErrRaggedMatrix when any row length disagrees
// with the feature count.
func (m *CountMatrix) Validate() error {
	if m == nil || len(m.CellIDs) == 0 || len(m.Features) == 0 {
		return ErrEmptyMatrix
	}
	if len(m.Values) != len(m.CellIDs) {
		return fmt.Errorf("%w: %d cells but %d value rows", ErrRaggedMatrix, len(m.CellIDs), len(m.Values))
	}
	for i, row := range m.Values {
		if len(row) != len(m.Features) {
			return fmt.Errorf("%w: row %q has %d values, want %d", ErrRaggedMatrix, m.CellIDs[i], len(row), len(m.Features))
		}
	}
	return nil
}

// HasCell reports whether id names one of the matrix rows.
func (m *CountMatrix) HasCell(id string) bool {
	for _, c := range m.CellIDs {
		if c == id {
			return true
		}
	}
	return false
}
