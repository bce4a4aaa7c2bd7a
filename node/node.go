package node

import (
	"sync"

	"github.com/signadot/livedoc/table"
)

// RunID identifies the execution run which produced a node.
type RunID string

// NoRun is the RunID of nodes which no run has produced.
const NoRun RunID = ""

func (r RunID) String() string {
	if r == NoRun {
		return "<none>"
	}
	return string(r)
}

// Node is either an *Element or a *Block.
type Node interface {
	Run() RunID
	node()
}

// Element is a leaf node carrying a payload.
type Element struct {
	Payload Payload
	RunID   RunID

	summaryOnce sync.Once
	summary     Summary
}

// Block is a container of child nodes.
type Block struct {
	Children   []Node
	AllowEmpty bool
	RunID      RunID
}

func NewElement(p Payload, runID RunID) *Element {
	if p == nil {
		p = Empty{}
	}
	return &Element{Payload: p, RunID: runID}
}

// NewBlock returns a block over children. The slice is owned by the
// returned block and must not be modified by the caller afterwards.
func NewBlock(children []Node, allowEmpty bool, runID RunID) *Block {
	return &Block{Children: children, AllowEmpty: allowEmpty, RunID: runID}
}

func (e *Element) Run() RunID { return e.RunID }
func (b *Block) Run() RunID   { return b.RunID }

func (*Element) node() {}
func (*Block) node()   {}

func (b *Block) Len() int { return len(b.Children) }

// Child returns the i'th child, or nil if i is out of range.
func (b *Block) Child(i int) Node {
	if i < 0 || i >= len(b.Children) {
		return nil
	}
	return b.Children[i]
}

// Summary describes the shape of an element's payload.
type Summary struct {
	Kind    Kind
	Tables  int
	Rows    int
	Columns int
}

// Summary returns a description of e's payload, computed once.
func (e *Element) Summary() Summary {
	e.summaryOnce.Do(func() {
		e.summary = summarize(e.Payload)
	})
	return e.summary
}

func summarize(p Payload) Summary {
	res := Summary{Kind: KindOf(p)}
	for _, t := range Tables(p) {
		res.Tables++
		res.Rows += t.Rows()
		res.Columns = max(res.Columns, len(t.Columns))
	}
	return res
}

// Tables returns the tables held by p, in order: a chart's unnamed data
// first, then its named datasets.
func Tables(p Payload) []*table.Table {
	switch x := p.(type) {
	case DataFrame:
		if x.Table == nil {
			return nil
		}
		return []*table.Table{x.Table}
	case Chart:
		var res []*table.Table
		if x.Data != nil {
			res = append(res, x.Data)
		}
		for i := range x.Datasets {
			res = append(res, x.Datasets[i].Table)
		}
		return res
	default:
		return nil
	}
}
