package refblast

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// querySeparator joins accessions into a disjunctive Entrez expression.
const querySeparator = " OR "

// ReadAccessions reads the accession CSV and returns the values of one
// column for every row after the header. Empty cells are skipped.
func ReadAccessions(path string, column int) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &InputMissingError{Path: path}
	} else if err != nil {
		return nil, fmt.Errorf("failed to open accession list %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows happen in hand-edited sheets

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse accession list %s: %w", path, err)
	}

	var accs []string
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if column >= len(row) {
			continue
		}
		if acc := strings.TrimSpace(row[column]); acc != "" {
			accs = append(accs, acc)
		}
	}

	if len(accs) == 0 {
		return nil, fmt.Errorf("no accessions found in column %d of %s", column, path)
	}
	return accs, nil
}

// BuildQuery composes the disjunctive Entrez search expression,
// eg "A1 OR A2 OR A3". No trailing separator.
func BuildQuery(accs []string) string {
	return strings.Join(accs, querySeparator)
}

// SplitQuery re-splits a composed expression back into its accessions.
// The taxid map stage iterates these in the same order they were joined.
func SplitQuery(expr string) []string {
	return strings.Split(expr, querySeparator)
}
