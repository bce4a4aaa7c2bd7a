// Package table provides the columnar tabular payload carried by data
// elements, and the merge engine used to append rows to it.
//
// # Tables
//
// A [Table] is an index plus an ordered list of named, typed columns, and an
// optional list of per-cell styles parallel to the columns:
//
//	t := &table.Table{
//	    Index: table.RangeIndex{Start: 0, Stop: 2, Step: 1},
//	    Columns: []table.NamedColumn{
//	        {Name: "a", Data: table.Int64Column{1, 2}},
//	    },
//	}
//
// Columns are tagged by element kind (string, double, int64, datetime,
// timedelta). Two columns are compatible iff their kinds match.
//
// # Concatenation
//
// [Concat] appends the rows of one table to another. It never mutates its
// inputs: every slice in the result is freshly allocated, so a table which
// is still referenced by an older tree version stays valid.
//
// A target table with no columns is a placeholder and is replaced outright
// by the incoming table. Range indices are extended without materializing
// their values. Any kind mismatch between indices or between paired columns
// fails the whole operation.
package table
