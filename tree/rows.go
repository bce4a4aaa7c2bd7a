package tree

import (
	"errors"
	"fmt"

	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/table"
)

var ErrNotTabular = errors.New("element does not hold tabular data")

// AddRows returns the payload which results from appending the rows of
// incoming to the table selected by name in p.
//
// For a chart, a named dataset is selected by name; without a name the
// unnamed data is preferred, then the first named dataset. When nothing
// matches, incoming becomes a new table of the chart: a named dataset if
// name is set, its unnamed data otherwise. If several datasets share a
// name the first one is used.
//
// A placeholder becomes a data frame holding incoming. A nil incoming is an
// empty table.
func AddRows(p node.Payload, name *string, incoming *table.Table) (node.Payload, error) {
	if incoming == nil {
		incoming = &table.Table{}
	}
	switch x := p.(type) {
	case nil, node.Empty:
		return node.DataFrame{Table: incoming}, nil
	case node.DataFrame:
		t, err := table.Concat(x.Table, incoming)
		if err != nil {
			return nil, err
		}
		return node.DataFrame{Table: t}, nil
	case node.Chart:
		return chartAddRows(x, name, incoming)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotTabular, node.KindOf(p))
	}
}

func chartAddRows(c node.Chart, name *string, incoming *table.Table) (node.Payload, error) {
	switch {
	case name != nil:
		i := c.DatasetIndex(*name)
		if i == -1 {
			return c.AppendDataset(*name, incoming), nil
		}
		t, err := table.Concat(c.Datasets[i].Table, incoming)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", *name, err)
		}
		return c.WithDataset(i, t), nil
	case c.Data != nil:
		t, err := table.Concat(c.Data, incoming)
		if err != nil {
			return nil, err
		}
		c.Data = t
		return c, nil
	case len(c.Datasets) != 0:
		t, err := table.Concat(c.Datasets[0].Table, incoming)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", c.Datasets[0].Name, err)
		}
		return c.WithDataset(0, t), nil
	default:
		c.Data = incoming
		return c, nil
	}
}
