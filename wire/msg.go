// Package wire decodes and encodes the messages a remote run sends to a
// live document: run boundaries, deltas, and the tabular data they carry.
//
// Messages are YAML documents (JSON is accepted as well, being a subset).
// Tagged unions are represented as objects with exactly one field set:
//
//	delta:
//	  path: [0, 1]
//	  addRows:
//	    name: series
//	    data:
//	      index: {range: {start: 0, stop: 2, step: 1}}
//	      columns:
//	        - {name: a, int64s: [1, 2]}
package wire

import "errors"

var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrAmbiguous   = errors.New("more than one kind set")
)

// ForwardMsg is one message of a run stream. Exactly one field is set.
type ForwardMsg struct {
	NewRun      *NewRun      `yaml:"newRun,omitempty" json:"newRun,omitempty"`
	Delta       *Delta       `yaml:"delta,omitempty" json:"delta,omitempty"`
	RunFinished *RunFinished `yaml:"runFinished,omitempty" json:"runFinished,omitempty"`
}

// NewRun starts a run. An empty RunID asks the receiver to mint one.
type NewRun struct {
	RunID string `yaml:"runId,omitempty" json:"runId,omitempty"`
}

type RunFinished struct {
	Status string `yaml:"status,omitempty" json:"status,omitempty"`
}

type Delta struct {
	Path       []int    `yaml:"path" json:"path"`
	NewElement *Element `yaml:"newElement,omitempty" json:"newElement,omitempty"`
	AddBlock   *Block   `yaml:"addBlock,omitempty" json:"addBlock,omitempty"`
	AddRows    *Rows    `yaml:"addRows,omitempty" json:"addRows,omitempty"`
}

type Element struct {
	Empty     *EmptyElement `yaml:"empty,omitempty" json:"empty,omitempty"`
	Text      *Text         `yaml:"text,omitempty" json:"text,omitempty"`
	DataFrame *DataFrame    `yaml:"dataFrame,omitempty" json:"dataFrame,omitempty"`
	Chart     *Chart        `yaml:"chart,omitempty" json:"chart,omitempty"`
}

type EmptyElement struct{}

type Text struct {
	Body string `yaml:"body" json:"body"`
}

type DataFrame struct {
	Data *Table `yaml:"data,omitempty" json:"data,omitempty"`
}

type Chart struct {
	Spec     string    `yaml:"spec,omitempty" json:"spec,omitempty"`
	Data     *Table    `yaml:"data,omitempty" json:"data,omitempty"`
	Datasets []Dataset `yaml:"datasets,omitempty" json:"datasets,omitempty"`
}

type Dataset struct {
	Name string `yaml:"name" json:"name"`
	Data *Table `yaml:"data" json:"data"`
}

type Block struct {
	AllowEmpty bool `yaml:"allowEmpty,omitempty" json:"allowEmpty,omitempty"`
}

type Rows struct {
	Name *string `yaml:"name,omitempty" json:"name,omitempty"`
	Data *Table  `yaml:"data" json:"data"`
}

type Table struct {
	Index   *Index    `yaml:"index,omitempty" json:"index,omitempty"`
	Columns []Column  `yaml:"columns,omitempty" json:"columns,omitempty"`
	Styles  [][]Style `yaml:"styles,omitempty" json:"styles,omitempty"`
}

// Index is a tagged index; exactly one field is set.
type Index struct {
	Range     *Range     `yaml:"range,omitempty" json:"range,omitempty"`
	Plain     *Values    `yaml:"plain,omitempty" json:"plain,omitempty"`
	Int64     *[]int64   `yaml:"int64,omitempty" json:"int64,omitempty"`
	Float64   *[]float64 `yaml:"float64,omitempty" json:"float64,omitempty"`
	Datetime  *[]int64   `yaml:"datetime,omitempty" json:"datetime,omitempty"`
	Timedelta *[]int64   `yaml:"timedelta,omitempty" json:"timedelta,omitempty"`
	Multi     *Multi     `yaml:"multi,omitempty" json:"multi,omitempty"`
}

type Range struct {
	Start int64 `yaml:"start" json:"start"`
	Stop  int64 `yaml:"stop" json:"stop"`
	Step  int64 `yaml:"step,omitempty" json:"step,omitempty"`
}

type Multi struct {
	Levels []Index    `yaml:"levels" json:"levels"`
	Labels [][]int32 `yaml:"labels" json:"labels"`
}

// Values is a tagged array of cells; exactly one field is set.
type Values struct {
	Strings    *[]string  `yaml:"strings,omitempty" json:"strings,omitempty"`
	Doubles    *[]float64 `yaml:"doubles,omitempty" json:"doubles,omitempty"`
	Int64s     *[]int64   `yaml:"int64s,omitempty" json:"int64s,omitempty"`
	Datetimes  *[]int64   `yaml:"datetimes,omitempty" json:"datetimes,omitempty"`
	Timedeltas *[]int64   `yaml:"timedeltas,omitempty" json:"timedeltas,omitempty"`
}

type Column struct {
	Name   string `yaml:"name" json:"name"`
	Values `yaml:",inline" json:",inline"`
}

type Style struct {
	CSS     string `yaml:"css,omitempty" json:"css,omitempty"`
	Display string `yaml:"display,omitempty" json:"display,omitempty"`
}
