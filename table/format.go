package table

import (
	"strconv"
	"strings"
	"time"
)

// Cell formats the i'th value of c for display.
func Cell(c Column, i int) string {
	if c == nil || i < 0 || i >= c.Len() {
		return ""
	}
	switch x := c.(type) {
	case StringColumn:
		return x[i]
	case DoubleColumn:
		return strconv.FormatFloat(x[i], 'g', -1, 64)
	case Int64Column:
		return strconv.FormatInt(x[i], 10)
	case DatetimeColumn:
		return formatTime(x[i])
	case TimedeltaColumn:
		return time.Duration(x[i]).String()
	}
	return ""
}

// Label formats the label of row i of ix for display. Multi index labels
// join their levels with "/".
func Label(ix Index, i int) string {
	if ix == nil || i < 0 || i >= ix.Len() {
		return ""
	}
	switch x := ix.(type) {
	case RangeIndex:
		return strconv.FormatInt(x.At(i), 10)
	case PlainIndex:
		return Cell(x.Values, i)
	case Int64Index:
		return strconv.FormatInt(x[i], 10)
	case Float64Index:
		return strconv.FormatFloat(x[i], 'g', -1, 64)
	case DatetimeIndex:
		return formatTime(x[i])
	case TimedeltaIndex:
		return time.Duration(x[i]).String()
	case MultiIndex:
		parts := make([]string, len(x.Levels))
		for l, level := range x.Levels {
			if l < len(x.Labels) && i < len(x.Labels[l]) {
				parts[l] = Label(level, int(x.Labels[l][i]))
			}
		}
		return strings.Join(parts, "/")
	}
	return ""
}

func formatTime(ns int64) string {
	return time.Unix(0, ns).UTC().Format(time.RFC3339Nano)
}
