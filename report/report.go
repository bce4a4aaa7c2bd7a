// Package report holds the root of a live document and applies deltas to it.
//
// A report root has exactly two containers: the main body at index 0 and
// the sidebar at index 1. The first element of every delta path selects one
// of them. This ordering is part of the wire protocol.
//
// Applying a delta never modifies a Root; it returns a new one which shares
// every subtree not on the delta's path with the old one. A failed apply
// therefore leaves the previous root intact.
package report

import (
	"errors"
	"fmt"

	"github.com/signadot/livedoc/delta"
	"github.com/signadot/livedoc/node"
	"github.com/signadot/livedoc/tree"
)

const (
	MainIndex    = 0
	SidebarIndex = 1
)

var (
	ErrRootArity         = errors.New("report root must have exactly two blocks")
	ErrTargetNotFound    = errors.New("target not found")
	ErrBadPath           = node.ErrBadPath
	ErrBadIndex          = tree.ErrBadIndex
	ErrUnrecognizedDelta = delta.ErrUnrecognizedDelta
)

type Root struct {
	top *node.Block
}

// New returns a root over the given containers, which must be exactly two
// blocks: main then sidebar.
func New(children ...node.Node) (*Root, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("%w: got %d children", ErrRootArity, len(children))
	}
	for i, c := range children {
		if _, ok := c.(*node.Block); !ok {
			return nil, fmt.Errorf("%w: child %d is %T", ErrRootArity, i, c)
		}
	}
	cs := make([]node.Node, 2)
	copy(cs, children)
	return &Root{top: node.NewBlock(cs, true, node.NoRun)}, nil
}

// Empty returns a root with empty main and sidebar containers.
func Empty() *Root {
	r, _ := New(node.NewBlock(nil, true, node.NoRun), node.NewBlock(nil, true, node.NoRun))
	return r
}

func (r *Root) Main() *node.Block {
	return r.top.Children[MainIndex].(*node.Block)
}

func (r *Root) Sidebar() *node.Block {
	return r.top.Children[SidebarIndex].(*node.Block)
}

// Node returns the block holding main and sidebar.
func (r *Root) Node() *node.Block {
	return r.top
}

func (r *Root) GetIn(path node.Path) (node.Node, bool) {
	return tree.GetIn(r.top, path)
}

// Elements returns every live element, main container first.
func (r *Root) Elements() []*node.Element {
	return tree.Elements(r.top)
}

// ApplyDelta returns the root which results from applying d at path on
// behalf of run runID.
func (r *Root) ApplyDelta(path node.Path, d delta.Delta, runID node.RunID) (*Root, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	if path[0] != MainIndex && path[0] != SidebarIndex {
		return nil, fmt.Errorf("%w: no container %d", ErrBadIndex, path[0])
	}
	var repl node.Node
	switch d := d.(type) {
	case delta.NewElement:
		if len(path) == 1 {
			return nil, fmt.Errorf("%w: cannot replace container %s with an element", ErrBadPath, path)
		}
		repl = node.NewElement(d.Payload, runID)
	case delta.AddBlock:
		var children []node.Node
		if b, ok := r.blockAt(path); ok {
			children = b.Children
		}
		repl = node.NewBlock(children, d.AllowEmpty, runID)
	case delta.AddRows:
		e, ok := r.elementAt(path)
		if !ok {
			return nil, fmt.Errorf("%w: no element at %s", ErrTargetNotFound, path)
		}
		p, err := tree.AddRows(e.Payload, d.Name, d.Table)
		if err != nil {
			return nil, fmt.Errorf("add rows at %s: %w", path, err)
		}
		repl = node.NewElement(p, runID)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnrecognizedDelta, d)
	}
	top, err := tree.SetIn(r.top, path, repl, runID)
	if err != nil {
		return nil, err
	}
	return &Root{top: top.(*node.Block)}, nil
}

// Apply applies a delta message.
func (r *Root) Apply(m *delta.Message, runID node.RunID) (*Root, error) {
	return r.ApplyDelta(m.Path, m.Delta, runID)
}

// ClearStaleNodes returns a root without the nodes that runID did not
// produce. Main and sidebar are pruned independently and always survive.
func (r *Root) ClearStaleNodes(runID node.RunID) *Root {
	cs := make([]node.Node, 2)
	for i, c := range r.top.Children {
		k, ok := tree.ClearStaleNodes(c, runID)
		if !ok {
			k = node.NewBlock(nil, true, runID)
		}
		cs[i] = k
	}
	return &Root{top: node.NewBlock(cs, true, runID)}
}

func (r *Root) blockAt(path node.Path) (*node.Block, bool) {
	n, ok := r.GetIn(path)
	if !ok {
		return nil, false
	}
	b, ok := n.(*node.Block)
	return b, ok
}

func (r *Root) elementAt(path node.Path) (*node.Element, bool) {
	n, ok := r.GetIn(path)
	if !ok {
		return nil, false
	}
	e, ok := n.(*node.Element)
	return e, ok
}
