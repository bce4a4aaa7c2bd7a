package table

import "fmt"

// Concat returns a new table holding the rows of a followed by the rows of b.
//
// If a has no columns, b is returned as is. Otherwise indices, columns and
// styles are concatenated positionally and the result is only returned if
// every part succeeds. Both inputs must be valid.
func Concat(a, b *Table) (*Table, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("incoming: %w", err)
	}
	if a.IsEmpty() {
		return b, nil
	}
	if b == nil || (b.IsEmpty() && b.Rows() == 0) {
		return a, nil
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	aRows, bRows := a.Rows(), b.Rows()
	if len(a.Columns) != len(b.Columns) {
		return nil, fmt.Errorf("%w: %d columns and %d columns", ErrColumnKinds, len(a.Columns), len(b.Columns))
	}
	index, err := ConcatIndex(a.Index, b.Index, bRows)
	if err != nil {
		return nil, err
	}
	res := &Table{
		Index:   index,
		Columns: make([]NamedColumn, len(a.Columns)),
	}
	for i := range a.Columns {
		col, err := ConcatColumns(a.Columns[i].Data, b.Columns[i].Data)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, a.Columns[i].Name, err)
		}
		res.Columns[i] = NamedColumn{Name: a.Columns[i].Name, Data: col}
	}
	styles, err := concatStyles(a, b)
	if err != nil {
		return nil, err
	}
	res.Styles = styles
	if got, want := res.Rows(), aRows+bRows; got != want {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrRowCount, got, want)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func concatStyles(a, b *Table) ([][]CellStyle, error) {
	if a.Styles == nil && b.Styles == nil {
		return nil, nil
	}
	as, bs := stylesOf(a), stylesOf(b)
	if len(as) != len(bs) {
		return nil, fmt.Errorf("%w: %d style lists and %d style lists", ErrStyles, len(as), len(bs))
	}
	res := make([][]CellStyle, len(as))
	for i := range as {
		res[i] = concat(as[i], bs[i])
	}
	return res, nil
}

// stylesOf returns t's styles, or blank styles shaped like t's columns.
func stylesOf(t *Table) [][]CellStyle {
	if t.Styles != nil {
		return t.Styles
	}
	res := make([][]CellStyle, len(t.Columns))
	for i := range t.Columns {
		res[i] = make([]CellStyle, t.Columns[i].Data.Len())
	}
	return res
}
