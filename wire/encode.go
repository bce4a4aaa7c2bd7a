package wire

import (
	"fmt"

	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/table"
)

// FromMessage converts a delta message to its wire form.
func FromMessage(m *delta.Message) (*Delta, error) {
	res := &Delta{Path: []int(m.Path)}
	switch d := m.Delta.(type) {
	case delta.NewElement:
		e, err := FromPayload(d.Payload)
		if err != nil {
			return nil, err
		}
		res.NewElement = e
	case delta.AddBlock:
		res.AddBlock = &Block{AllowEmpty: d.AllowEmpty}
	case delta.AddRows:
		t, err := FromTable(d.Table)
		if err != nil {
			return nil, err
		}
		res.AddRows = &Rows{Name: d.Name, Data: t}
	default:
		return nil, fmt.Errorf("%w: %T", delta.ErrUnrecognizedDelta, m.Delta)
	}
	return res, nil
}

func FromPayload(p node.Payload) (*Element, error) {
	switch x := p.(type) {
	case nil, node.Empty:
		return &Element{Empty: &EmptyElement{}}, nil
	case node.Text:
		return &Element{Text: &Text{Body: x.Body}}, nil
	case node.DataFrame:
		t, err := FromTable(x.Table)
		if err != nil {
			return nil, err
		}
		return &Element{DataFrame: &DataFrame{Data: t}}, nil
	case node.Chart:
		c := &Chart{Spec: x.Spec}
		if x.Data != nil {
			t, err := FromTable(x.Data)
			if err != nil {
				return nil, err
			}
			c.Data = t
		}
		for _, ds := range x.Datasets {
			t, err := FromTable(ds.Table)
			if err != nil {
				return nil, err
			}
			c.Datasets = append(c.Datasets, Dataset{Name: ds.Name, Data: t})
		}
		return &Element{Chart: c}, nil
	default:
		return nil, fmt.Errorf("%w: payload %T", ErrUnknownKind, p)
	}
}

func FromTable(t *table.Table) (*Table, error) {
	if t == nil {
		return nil, nil
	}
	res := &Table{}
	if t.Index != nil {
		idx, err := FromIndex(t.Index)
		if err != nil {
			return nil, err
		}
		res.Index = idx
	}
	for _, c := range t.Columns {
		vals, err := FromColumn(c.Data)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		res.Columns = append(res.Columns, Column{Name: c.Name, Values: *vals})
	}
	if t.Styles != nil {
		res.Styles = make([][]Style, len(t.Styles))
		for i, ss := range t.Styles {
			res.Styles[i] = make([]Style, len(ss))
			for j, s := range ss {
				res.Styles[i][j] = Style{CSS: s.CSS, Display: s.DisplayValue}
			}
		}
	}
	return res, nil
}

func FromIndex(x table.Index) (*Index, error) {
	switch x := x.(type) {
	case table.RangeIndex:
		return &Index{Range: &Range{Start: x.Start, Stop: x.Stop, Step: x.Step}}, nil
	case table.PlainIndex:
		vals, err := FromColumn(x.Values)
		if err != nil {
			return nil, fmt.Errorf("plain index: %w", err)
		}
		return &Index{Plain: vals}, nil
	case table.Int64Index:
		v := []int64(x)
		return &Index{Int64: &v}, nil
	case table.Float64Index:
		v := []float64(x)
		return &Index{Float64: &v}, nil
	case table.DatetimeIndex:
		v := []int64(x)
		return &Index{Datetime: &v}, nil
	case table.TimedeltaIndex:
		v := []int64(x)
		return &Index{Timedelta: &v}, nil
	case table.MultiIndex:
		m := &Multi{Labels: x.Labels}
		for i, lvl := range x.Levels {
			w, err := FromIndex(lvl)
			if err != nil {
				return nil, fmt.Errorf("multi index level %d: %w", i, err)
			}
			m.Levels = append(m.Levels, *w)
		}
		return &Index{Multi: m}, nil
	default:
		return nil, fmt.Errorf("%w: index %T", ErrUnknownKind, x)
	}
}

func FromColumn(c table.Column) (*Values, error) {
	switch c := c.(type) {
	case table.StringColumn:
		v := []string(c)
		return &Values{Strings: &v}, nil
	case table.DoubleColumn:
		v := []float64(c)
		return &Values{Doubles: &v}, nil
	case table.Int64Column:
		v := []int64(c)
		return &Values{Int64s: &v}, nil
	case table.DatetimeColumn:
		v := []int64(c)
		return &Values{Datetimes: &v}, nil
	case table.TimedeltaColumn:
		v := []int64(c)
		return &Values{Timedeltas: &v}, nil
	default:
		return nil, fmt.Errorf("%w: column %T", ErrUnknownKind, c)
	}
}
