// Package keymap maps lane columns to injectable key names.
package keymap

import "github.com/softpedal/lanebot/internal/errors"

// DefaultKeys is the reference layout: the number row for the first eight
// lanes, then q and w. Matches in-game binds of 1,2,3,... per column.
var DefaultKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "q", "w"}

// Table is a validated, immutable column-to-key lookup built once per
// session. Lookup can never fail after construction.
type Table struct {
	keys []string
}

// New builds a table for columns lanes using the default key layout.
func New(columns int) (*Table, error) {
	return NewWithKeys(columns, DefaultKeys)
}

// NewWithKeys builds a table from a custom layout. The layout must cover
// every requested column with a non-empty key name.
func NewWithKeys(columns int, keys []string) (*Table, error) {
	if columns < 1 {
		return nil, errors.Newf(errors.CodeInvalidColumns,
			"column count must be positive, got %d", columns)
	}
	if columns > len(keys) {
		return nil, errors.Newf(errors.CodeInvalidColumns,
			"%d columns requested but only %d keys bound; extend the key layout", columns, len(keys))
	}
	bound := make([]string, columns)
	for i := 0; i < columns; i++ {
		if keys[i] == "" {
			return nil, errors.Newf(errors.CodeInvalidColumns, "column %d has an empty key binding", i)
		}
		bound[i] = keys[i]
	}
	return &Table{keys: bound}, nil
}

// Key returns the key name bound to column. Column indices are validated at
// construction; callers pass lane indices in [0, Columns).
func (t *Table) Key(column int) string { return t.keys[column] }

// Columns returns the number of bound lanes.
func (t *Table) Columns() int { return len(t.keys) }
