package table

import "fmt"

type IndexKind int

const (
	RangeIndexKind IndexKind = iota
	PlainIndexKind
	Int64IndexKind
	Float64IndexKind
	DatetimeIndexKind
	TimedeltaIndexKind
	MultiIndexKind
)

var indexKindNames = map[IndexKind]string{
	RangeIndexKind:     "range",
	PlainIndexKind:     "plain",
	Int64IndexKind:     "int64",
	Float64IndexKind:   "float64",
	DatetimeIndexKind:  "datetime",
	TimedeltaIndexKind: "timedelta",
	MultiIndexKind:     "multi",
}

func (k IndexKind) String() string {
	if s, ok := indexKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("IndexKind(%d)", int(k))
}

// Index labels the rows of a table.
type Index interface {
	Kind() IndexKind
	Len() int
	index()
}

// RangeIndex is the half open arithmetic sequence [Start, Stop) by Step.
// Its values are never materialized.
type RangeIndex struct {
	Start, Stop, Step int64
}

// PlainIndex labels rows with the values of an arbitrary column.
type PlainIndex struct {
	Values Column
}

type (
	Int64Index     []int64
	Float64Index   []float64
	DatetimeIndex  []int64
	TimedeltaIndex []int64
)

// MultiIndex is a hierarchical index: Labels[i][row] selects a position in
// Levels[i].
type MultiIndex struct {
	Levels []Index
	Labels [][]int32
}

func (RangeIndex) Kind() IndexKind     { return RangeIndexKind }
func (PlainIndex) Kind() IndexKind     { return PlainIndexKind }
func (Int64Index) Kind() IndexKind     { return Int64IndexKind }
func (Float64Index) Kind() IndexKind   { return Float64IndexKind }
func (DatetimeIndex) Kind() IndexKind  { return DatetimeIndexKind }
func (TimedeltaIndex) Kind() IndexKind { return TimedeltaIndexKind }
func (MultiIndex) Kind() IndexKind     { return MultiIndexKind }

func (r RangeIndex) Len() int {
	switch {
	case r.Step > 0 && r.Stop > r.Start:
		return int((r.Stop - r.Start + r.Step - 1) / r.Step)
	case r.Step < 0 && r.Stop < r.Start:
		return int((r.Start - r.Stop - r.Step - 1) / -r.Step)
	default:
		return 0
	}
}

func (p PlainIndex) Len() int {
	if p.Values == nil {
		return 0
	}
	return p.Values.Len()
}

func (x Int64Index) Len() int     { return len(x) }
func (x Float64Index) Len() int   { return len(x) }
func (x DatetimeIndex) Len() int  { return len(x) }
func (x TimedeltaIndex) Len() int { return len(x) }

func (m MultiIndex) Len() int {
	if len(m.Labels) == 0 {
		return 0
	}
	return len(m.Labels[0])
}

func (RangeIndex) index()     {}
func (PlainIndex) index()     {}
func (Int64Index) index()     {}
func (Float64Index) index()   {}
func (DatetimeIndex) index()  {}
func (TimedeltaIndex) index() {}
func (MultiIndex) index()     {}

// At returns the i'th value of a range index.
func (r RangeIndex) At(i int) int64 {
	return r.Start + int64(i)*r.Step
}

// ConcatIndex appends index b, which labels n rows, to index a.
//
// A range index is extended by n steps; b's own values are not consulted.
// Other kinds concatenate their values and must match. A range combined
// with any other kind, or two multi indices, cannot be concatenated.
func ConcatIndex(a, b Index, n int) (Index, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: missing index", ErrIndexKinds)
	}
	if a.Kind() != b.Kind() || a.Kind() == MultiIndexKind {
		return nil, fmt.Errorf("%w: %s and %s", ErrIndexKinds, a.Kind(), b.Kind())
	}
	switch x := a.(type) {
	case RangeIndex:
		step := x.Step
		if step == 0 {
			step = 1
		}
		x.Step = step
		x.Stop = x.Start + int64(x.Len()+n)*step
		return x, nil
	case PlainIndex:
		vals, err := ConcatColumns(x.Values, b.(PlainIndex).Values)
		if err != nil {
			return nil, fmt.Errorf("%w: plain index: %w", ErrIndexKinds, err)
		}
		return PlainIndex{Values: vals}, nil
	case Int64Index:
		return Int64Index(concat(x, b.(Int64Index))), nil
	case Float64Index:
		return Float64Index(concat(x, b.(Float64Index))), nil
	case DatetimeIndex:
		return DatetimeIndex(concat(x, b.(DatetimeIndex))), nil
	case TimedeltaIndex:
		return TimedeltaIndex(concat(x, b.(TimedeltaIndex))), nil
	default:
		return nil, fmt.Errorf("%w: unknown index type %T", ErrIndexKinds, a)
	}
}
