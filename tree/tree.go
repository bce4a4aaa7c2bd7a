// Package tree implements copy-on-write, path addressed operations on
// node trees.
//
// Every operation returns a new tree and leaves its input untouched. Only
// the blocks along the addressed path are rebuilt; all other subtrees of
// the result are the very same values as in the input, so callers may
// compare them by identity to skip unchanged parts.
package tree

import (
	"errors"
	"fmt"

	"github.com/signadot/livedoc/node"
)

var (
	ErrBadIndex = errors.New("bad index")
	ErrBadPath  = node.ErrBadPath
)

// GetIn returns the node at path below n. It returns false if some index is
// out of range or if an element is reached before the path is exhausted.
func GetIn(n node.Node, path node.Path) (node.Node, bool) {
	cur := n
	for _, i := range path {
		b, ok := cur.(*node.Block)
		if !ok {
			return nil, false
		}
		cur = b.Child(i)
		if cur == nil {
			return nil, false
		}
	}
	return cur, cur != nil
}

// SetIn returns a copy of n with replacement placed at path. The last index
// of path may equal the number of children of its parent, in which case
// replacement is appended. Each block rebuilt along the path is stamped
// with runID.
func SetIn(n node.Node, path node.Path, replacement node.Node, runID node.RunID) (node.Node, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	return setIn(n, path, 0, replacement, runID)
}

func setIn(n node.Node, path node.Path, depth int, replacement node.Node, runID node.RunID) (node.Node, error) {
	b, ok := n.(*node.Block)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a block", ErrBadPath, path[:depth])
	}
	i := path[depth]
	last := depth == len(path)-1
	switch {
	case last && (i < 0 || i > len(b.Children)):
		return nil, fmt.Errorf("%w: %d at %s (%d children)", ErrBadIndex, i, path[:depth+1], len(b.Children))
	case !last && (i < 0 || i >= len(b.Children)):
		return nil, fmt.Errorf("%w: no child %d at %s", ErrBadPath, i, path[:depth+1])
	}
	child := replacement
	if !last {
		var err error
		child, err = setIn(b.Children[i], path, depth+1, replacement, runID)
		if err != nil {
			return nil, err
		}
	}
	size := len(b.Children)
	if i == size {
		size++
	}
	children := make([]node.Node, size)
	copy(children, b.Children)
	children[i] = child
	return node.NewBlock(children, b.AllowEmpty, runID), nil
}
