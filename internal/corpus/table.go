// Package corpus assembles flattened records into a column-oriented table
// and writes it as one JSON document.
package corpus

import (
	"fmt"

	"github.com/Hazot/trec-clinical-trials-2023/internal/core/domain"
)

// Table is an in-memory, column-oriented collection of rows.
//
// Columns are the union of row keys in order of first appearance.
// A row without a value for a column reads as nil.
type Table struct {
	columns []string
	known   map[string]struct{}
	rows    []*domain.Mapping
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{known: make(map[string]struct{})}
}

// Append adds one row.
func (t *Table) Append(row *domain.Mapping) {
	if row == nil {
		row = domain.NewMapping()
	}
	for pair := row.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := t.known[pair.Key]; !ok {
			t.known[pair.Key] = struct{}{}
			t.columns = append(t.columns, pair.Key)
		}
	}
	t.rows = append(t.rows, row)
}

// AppendRecord adds rec as one row.
func (t *Table) AppendRecord(rec *domain.Record) {
	t.Append(rec.Row())
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cell returns the value of column col in row i.
func (t *Table) Cell(i int, col string) any {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	v, _ := t.rows[i].Get(col)
	return v
}

// Project returns a table holding only the named columns, in the order given.
// Every row is kept.
func (t *Table) Project(cols ...string) (*Table, error) {
	for _, col := range cols {
		if _, ok := t.known[col]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, col)
		}
	}

	out := NewTable()
	for _, row := range t.rows {
		projected := domain.NewMapping()
		for _, col := range cols {
			v, _ := row.Get(col)
			projected.Set(col, v)
		}
		out.Append(projected)
	}
	// Keep requested columns even when there are no rows.
	for _, col := range cols {
		if _, ok := out.known[col]; !ok {
			out.known[col] = struct{}{}
			out.columns = append(out.columns, col)
		}
	}
	return out, nil
}
