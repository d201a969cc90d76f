package codec

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/wishbone/pkg/domain"
)

// The export writers persist result tables for CLI consumers. The two label
// mappings go out as TSV, the embedding keeps the pipeline's CSV shape.

// WriteBranches writes the branch table as TSV with a header row.
func WriteBranches(path string, rows []domain.BranchAssignment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write branches: %w", err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\tbranch\n", cellColumn)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\n", r.CellID, r.Branch)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write branches: %w", err)
	}
	return f.Close()
}

// WriteTrajectory writes the pseudo-time table as TSV with a header row.
func WriteTrajectory(path string, rows []domain.PseudoTime) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write trajectory: %w", err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\ttrajectory\n", cellColumn)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.CellID, strconv.FormatFloat(r.Time, 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write trajectory: %w", err)
	}
	return f.Close()
}

// WriteEmbedding writes the embedding table as CSV, header included.
func WriteEmbedding(path string, emb domain.Embedding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write embedding: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(emb.Columns); err != nil {
		f.Close()
		return fmt.Errorf("write embedding: %w", err)
	}
	rec := make([]string, 0, len(emb.Columns))
	for _, row := range emb.Rows {
		rec = rec[:0]
		rec = append(rec, row.CellID)
		for _, v := range row.Coords {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write embedding: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write embedding: %w", err)
	}
	return f.Close()
}
