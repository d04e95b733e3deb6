package entity

import "strings"

// Table is the normalized result of ingesting one CSV file.
//
// Headers is the first parsed record verbatim: no trimming, no deduplication,
// blanks and duplicates allowed. Rows holds every later record except those
// whose every cell is blank after trimming; record lengths may be irregular.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows (headers excluded).
func (t Table) RowCount() int {
	return len(t.Rows)
}

// required3DColumns are the columns the external visualizer needs, lowercased
// for case-insensitive matching.
var required3DColumns = []string{
	"x",
	"y",
	"z",
	"componentid",
	"materialid",
	"true_temp",
	"pred_temp",
	"abs_error",
}

// CompatibleWith3D reports whether the table's headers contain every column
// the 3D visualizer requires, compared case-insensitively. Extra columns,
// order, and casing do not matter. The predicate is informational only and
// never affects parsing or filtering.
func (t Table) CompatibleWith3D() bool {
	present := make(map[string]struct{}, len(t.Headers))
	for _, h := range t.Headers {
		present[strings.ToLower(h)] = struct{}{}
	}

	for _, col := range required3DColumns {
		if _, found := present[col]; !found {
			return false
		}
	}

	return true
}
