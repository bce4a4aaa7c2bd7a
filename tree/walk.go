package tree

import "github.com/signadot/livedoc/node"

// WalkFunc is called for each node visited by Walk. Returning false from a
// call on a block skips that block's children.
type WalkFunc func(path node.Path, n node.Node) bool

// Walk visits n and its descendants depth first, parents before children.
func Walk(n node.Node, path node.Path, f WalkFunc) {
	if n == nil || !f(path, n) {
		return
	}
	b, ok := n.(*node.Block)
	if !ok {
		return
	}
	for i, c := range b.Children {
		Walk(c, path.Append(i), f)
	}
}

// Elements returns the elements below n in depth first order.
func Elements(n node.Node) []*node.Element {
	var res []*node.Element
	Walk(n, nil, func(_ node.Path, n node.Node) bool {
		if e, ok := n.(*node.Element); ok {
			res = append(res, e)
		}
		return true
	})
	return res
}
