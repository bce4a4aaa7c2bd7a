package table

import "fmt"

type ColumnKind int

const (
	StringKind ColumnKind = iota
	DoubleKind
	Int64Kind
	DatetimeKind
	TimedeltaKind
)

var columnKindNames = map[ColumnKind]string{
	StringKind:    "string",
	DoubleKind:    "double",
	Int64Kind:     "int64",
	DatetimeKind:  "datetime",
	TimedeltaKind: "timedelta",
}

func (k ColumnKind) String() string {
	if s, ok := columnKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

func ColumnKinds() []ColumnKind {
	return []ColumnKind{StringKind, DoubleKind, Int64Kind, DatetimeKind, TimedeltaKind}
}

// Column is a typed sequence of cell values. The set of implementations is
// closed: StringColumn, DoubleColumn, Int64Column, DatetimeColumn and
// TimedeltaColumn.
type Column interface {
	Kind() ColumnKind
	Len() int
	column()
}

type (
	StringColumn []string
	DoubleColumn []float64
	Int64Column  []int64
	// DatetimeColumn holds nanoseconds since the Unix epoch.
	DatetimeColumn []int64
	// TimedeltaColumn holds durations in nanoseconds.
	TimedeltaColumn []int64
)

func (StringColumn) Kind() ColumnKind    { return StringKind }
func (DoubleColumn) Kind() ColumnKind    { return DoubleKind }
func (Int64Column) Kind() ColumnKind     { return Int64Kind }
func (DatetimeColumn) Kind() ColumnKind  { return DatetimeKind }
func (TimedeltaColumn) Kind() ColumnKind { return TimedeltaKind }

func (c StringColumn) Len() int    { return len(c) }
func (c DoubleColumn) Len() int    { return len(c) }
func (c Int64Column) Len() int     { return len(c) }
func (c DatetimeColumn) Len() int  { return len(c) }
func (c TimedeltaColumn) Len() int { return len(c) }

func (StringColumn) column()    {}
func (DoubleColumn) column()    {}
func (Int64Column) column()     {}
func (DatetimeColumn) column()  {}
func (TimedeltaColumn) column() {}

// Compatible reports whether a and b may be concatenated.
func Compatible(a, b Column) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind()
}

// ConcatColumns returns a new column holding the values of a followed by
// those of b.
func ConcatColumns(a, b Column) (Column, error) {
	if !Compatible(a, b) {
		return nil, fmt.Errorf("%w: %s and %s", ErrColumnKinds, kindOf(a), kindOf(b))
	}
	switch x := a.(type) {
	case StringColumn:
		return StringColumn(concat(x, b.(StringColumn))), nil
	case DoubleColumn:
		return DoubleColumn(concat(x, b.(DoubleColumn))), nil
	case Int64Column:
		return Int64Column(concat(x, b.(Int64Column))), nil
	case DatetimeColumn:
		return DatetimeColumn(concat(x, b.(DatetimeColumn))), nil
	case TimedeltaColumn:
		return TimedeltaColumn(concat(x, b.(TimedeltaColumn))), nil
	default:
		return nil, fmt.Errorf("%w: unknown column type %T", ErrColumnKinds, a)
	}
}

func kindOf(c Column) string {
	if c == nil {
		return "<nil>"
	}
	return c.Kind().String()
}

func concat[T any](a, b []T) []T {
	res := make([]T, 0, len(a)+len(b))
	res = append(res, a...)
	return append(res, b...)
}
