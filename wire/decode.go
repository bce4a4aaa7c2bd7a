package wire

import (
	"fmt"

	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/table"
)

// Message converts d to a delta message.
func (d *Delta) Message() (*delta.Message, error) {
	if n := count(d.NewElement != nil, d.AddBlock != nil, d.AddRows != nil); n != 1 {
		if n == 0 {
			return nil, fmt.Errorf("%w: no kind set at %v", delta.ErrUnrecognizedDelta, d.Path)
		}
		return nil, fmt.Errorf("%w: %w at %v", delta.ErrUnrecognizedDelta, ErrAmbiguous, d.Path)
	}
	path := make(node.Path, len(d.Path))
	copy(path, d.Path)
	res := &delta.Message{Path: path}
	switch {
	case d.NewElement != nil:
		p, err := d.NewElement.Payload()
		if err != nil {
			return nil, err
		}
		res.Delta = delta.NewElement{Payload: p}
	case d.AddBlock != nil:
		res.Delta = delta.AddBlock{AllowEmpty: d.AddBlock.AllowEmpty}
	case d.AddRows != nil:
		t, err := d.AddRows.Data.Table()
		if err != nil {
			return nil, fmt.Errorf("addRows at %v: %w", d.Path, err)
		}
		res.Delta = delta.AddRows{Name: d.AddRows.Name, Table: t}
	}
	return res, nil
}

func (e *Element) Payload() (node.Payload, error) {
	switch count(e.Empty != nil, e.Text != nil, e.DataFrame != nil, e.Chart != nil) {
	case 0:
		return nil, fmt.Errorf("%w: element", ErrUnknownKind)
	case 1:
	default:
		return nil, fmt.Errorf("%w: element", ErrAmbiguous)
	}
	switch {
	case e.Text != nil:
		return node.Text{Body: e.Text.Body}, nil
	case e.DataFrame != nil:
		t, err := e.DataFrame.Data.Table()
		if err != nil {
			return nil, fmt.Errorf("dataFrame: %w", err)
		}
		return node.DataFrame{Table: t}, nil
	case e.Chart != nil:
		return e.Chart.payload()
	default:
		return node.Empty{}, nil
	}
}

func (c *Chart) payload() (node.Payload, error) {
	res := node.Chart{Spec: c.Spec}
	if c.Data != nil {
		t, err := c.Data.Table()
		if err != nil {
			return nil, fmt.Errorf("chart data: %w", err)
		}
		res.Data = t
	}
	for i := range c.Datasets {
		ds := &c.Datasets[i]
		t, err := ds.Data.Table()
		if err != nil {
			return nil, fmt.Errorf("chart dataset %q: %w", ds.Name, err)
		}
		res.Datasets = append(res.Datasets, node.Dataset{Name: ds.Name, Table: t})
	}
	return res, nil
}

// Table converts t to a table. A nil t is an empty table, and a missing
// index is a range over the rows.
func (t *Table) Table() (*table.Table, error) {
	if t == nil {
		return &table.Table{}, nil
	}
	res := &table.Table{}
	for i := range t.Columns {
		c := &t.Columns[i]
		vals, err := c.Values.Column()
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, c.Name, err)
		}
		res.Columns = append(res.Columns, table.NamedColumn{Name: c.Name, Data: vals})
	}
	if t.Index == nil {
		res.Index = table.RangeIndex{Start: 0, Stop: int64(res.Rows()), Step: 1}
	} else {
		idx, err := t.Index.Index()
		if err != nil {
			return nil, err
		}
		res.Index = idx
	}
	if t.Styles != nil {
		res.Styles = make([][]table.CellStyle, len(t.Styles))
		for i, ss := range t.Styles {
			res.Styles[i] = make([]table.CellStyle, len(ss))
			for j, s := range ss {
				res.Styles[i][j] = table.CellStyle{CSS: s.CSS, DisplayValue: s.Display}
			}
		}
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (x *Index) Index() (table.Index, error) {
	n := count(x.Range != nil, x.Plain != nil, x.Int64 != nil, x.Float64 != nil,
		x.Datetime != nil, x.Timedelta != nil, x.Multi != nil)
	switch n {
	case 0:
		return nil, fmt.Errorf("%w: index", ErrUnknownKind)
	case 1:
	default:
		return nil, fmt.Errorf("%w: index", ErrAmbiguous)
	}
	switch {
	case x.Range != nil:
		step := x.Range.Step
		if step == 0 {
			step = 1
		}
		return table.RangeIndex{Start: x.Range.Start, Stop: x.Range.Stop, Step: step}, nil
	case x.Plain != nil:
		vals, err := x.Plain.Column()
		if err != nil {
			return nil, fmt.Errorf("plain index: %w", err)
		}
		return table.PlainIndex{Values: vals}, nil
	case x.Int64 != nil:
		return table.Int64Index(*x.Int64), nil
	case x.Float64 != nil:
		return table.Float64Index(*x.Float64), nil
	case x.Datetime != nil:
		return table.DatetimeIndex(*x.Datetime), nil
	case x.Timedelta != nil:
		return table.TimedeltaIndex(*x.Timedelta), nil
	default:
		res := table.MultiIndex{Labels: x.Multi.Labels}
		for i := range x.Multi.Levels {
			lvl, err := x.Multi.Levels[i].Index()
			if err != nil {
				return nil, fmt.Errorf("multi index level %d: %w", i, err)
			}
			res.Levels = append(res.Levels, lvl)
		}
		return res, nil
	}
}

func (v *Values) Column() (table.Column, error) {
	n := count(v.Strings != nil, v.Doubles != nil, v.Int64s != nil, v.Datetimes != nil, v.Timedeltas != nil)
	switch n {
	case 0:
		return nil, fmt.Errorf("%w: column", ErrUnknownKind)
	case 1:
	default:
		return nil, fmt.Errorf("%w: column", ErrAmbiguous)
	}
	switch {
	case v.Strings != nil:
		return table.StringColumn(*v.Strings), nil
	case v.Doubles != nil:
		return table.DoubleColumn(*v.Doubles), nil
	case v.Int64s != nil:
		return table.Int64Column(*v.Int64s), nil
	case v.Datetimes != nil:
		return table.DatetimeColumn(*v.Datetimes), nil
	default:
		return table.TimedeltaColumn(*v.Timedeltas), nil
	}
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
