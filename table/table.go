package table

import "fmt"

type NamedColumn struct {
	Name string
	Data Column
}

// CellStyle is the presentation attached to a single cell.
type CellStyle struct {
	CSS          string
	DisplayValue string
}

// Table is a columnar data set. Styles, if non-nil, holds one list per
// column, each as long as that column.
type Table struct {
	Index   Index
	Columns []NamedColumn
	Styles  [][]CellStyle
}

// Rows returns the number of rows in t. A table without columns has as
// many rows as its index.
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}
	if len(t.Columns) != 0 {
		if t.Columns[0].Data == nil {
			return 0
		}
		return t.Columns[0].Data.Len()
	}
	if t.Index == nil {
		return 0
	}
	return t.Index.Len()
}

// IsEmpty reports whether t is a placeholder with no columns.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Columns) == 0
}

func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	res := make([]string, len(t.Columns))
	for i := range t.Columns {
		res[i] = t.Columns[i].Name
	}
	return res
}

// Validate checks that all columns have the same length, that the index
// labels every row, and that styles, if present, parallel the columns.
func (t *Table) Validate() error {
	if t == nil {
		return nil
	}
	rows := t.Rows()
	for i := range t.Columns {
		col := &t.Columns[i]
		if col.Data == nil {
			return fmt.Errorf("%w: column %d (%q) has no data", ErrInvalid, i, col.Name)
		}
		if n := col.Data.Len(); n != rows {
			return fmt.Errorf("%w: column %d (%q) has %d rows, want %d", ErrInvalid, i, col.Name, n, rows)
		}
	}
	if t.Index != nil && len(t.Columns) != 0 && t.Index.Len() != rows {
		return fmt.Errorf("%w: %s index has %d labels, want %d", ErrInvalid, t.Index.Kind(), t.Index.Len(), rows)
	}
	if t.Styles == nil {
		return nil
	}
	if len(t.Styles) != len(t.Columns) {
		return fmt.Errorf("%w: %d style lists for %d columns", ErrInvalid, len(t.Styles), len(t.Columns))
	}
	for i := range t.Styles {
		if len(t.Styles[i]) != rows {
			return fmt.Errorf("%w: style list %d has %d cells, want %d", ErrInvalid, i, len(t.Styles[i]), rows)
		}
	}
	return nil
}
