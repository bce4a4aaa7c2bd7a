// Package delta defines the tree mutation commands applied to a live
// document.
package delta

import (
	"errors"
	"fmt"

	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/table"
)

var ErrUnrecognizedDelta = errors.New("unrecognized delta")

type Kind int

const (
	NewElementKind Kind = iota
	AddBlockKind
	AddRowsKind
)

func (k Kind) String() string {
	switch k {
	case NewElementKind:
		return "newElement"
	case AddBlockKind:
		return "addBlock"
	case AddRowsKind:
		return "addRows"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func Kinds() []Kind {
	return []Kind{NewElementKind, AddBlockKind, AddRowsKind}
}

// Delta is one of NewElement, AddBlock or AddRows.
type Delta interface {
	Kind() Kind
	delta()
}

// NewElement places a new element with Payload at the target path.
type NewElement struct {
	Payload node.Payload
}

// AddBlock places a block at the target path, keeping the children of any
// block already there.
type AddBlock struct {
	AllowEmpty bool
}

// AddRows appends Table to the table held by the element at the target
// path. Name, if set, selects a named dataset of a chart.
type AddRows struct {
	Name  *string
	Table *table.Table
}

func (NewElement) Kind() Kind { return NewElementKind }
func (AddBlock) Kind() Kind   { return AddBlockKind }
func (AddRows) Kind() Kind    { return AddRowsKind }

func (NewElement) delta() {}
func (AddBlock) delta()   {}
func (AddRows) delta()    {}

// Message pairs a delta with the path it targets.
type Message struct {
	Path  node.Path
	Delta Delta
}

func (m *Message) String() string {
	if m.Delta == nil {
		return fmt.Sprintf("<nil delta> at %s", m.Path)
	}
	return fmt.Sprintf("%s at %s", m.Delta.Kind(), m.Path)
}
