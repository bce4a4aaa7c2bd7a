package node

import (
	"fmt"

	"github.com/signadot/livedoc/table"
)

type Kind int

const (
	EmptyKind Kind = iota
	TextKind
	DataFrameKind
	ChartKind
)

func (k Kind) String() string {
	switch k {
	case EmptyKind:
		return "empty"
	case TextKind:
		return "text"
	case DataFrameKind:
		return "dataFrame"
	case ChartKind:
		return "chart"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Payload is the content of an element: one of Empty, Text, DataFrame or
// Chart.
type Payload interface {
	Kind() Kind
	payload()
}

// Empty is the payload of a placeholder element.
type Empty struct{}

type Text struct {
	Body string
}

// DataFrame displays a single table.
type DataFrame struct {
	Table *table.Table
}

// Chart renders one or more tables according to Spec. Data is the unnamed
// table; Datasets holds named ones.
type Chart struct {
	Spec     string
	Data     *table.Table
	Datasets []Dataset
}

type Dataset struct {
	Name  string
	Table *table.Table
}

func (Empty) Kind() Kind     { return EmptyKind }
func (Text) Kind() Kind      { return TextKind }
func (DataFrame) Kind() Kind { return DataFrameKind }
func (Chart) Kind() Kind     { return ChartKind }

func (Empty) payload()     {}
func (Text) payload()      {}
func (DataFrame) payload() {}
func (Chart) payload()     {}

// KindOf returns p's kind, treating nil as Empty.
func KindOf(p Payload) Kind {
	if p == nil {
		return EmptyKind
	}
	return p.Kind()
}

// WithDataset returns a copy of c whose i'th dataset holds t. The datasets
// slice is copied; c is unchanged.
func (c Chart) WithDataset(i int, t *table.Table) Chart {
	ds := make([]Dataset, len(c.Datasets))
	copy(ds, c.Datasets)
	ds[i].Table = t
	c.Datasets = ds
	return c
}

// AppendDataset returns a copy of c with a new named dataset.
func (c Chart) AppendDataset(name string, t *table.Table) Chart {
	ds := make([]Dataset, len(c.Datasets), len(c.Datasets)+1)
	copy(ds, c.Datasets)
	c.Datasets = append(ds, Dataset{Name: name, Table: t})
	return c
}

// DatasetIndex returns the position of the first dataset named name, or -1.
func (c Chart) DatasetIndex(name string) int {
	for i := range c.Datasets {
		if c.Datasets[i].Name == name {
			return i
		}
	}
	return -1
}
