package tree

import "github.com/signadot/livedoc/node"

// ClearStaleNodes removes from n every node not produced by runID.
//
// Elements survive iff they carry runID. A block survives if any of its
// children survive or if it allows emptiness; surviving blocks are rebuilt
// over their surviving children and stamped with runID. It returns false
// if n itself does not survive.
func ClearStaleNodes(n node.Node, runID node.RunID) (node.Node, bool) {
	switch x := n.(type) {
	case *node.Element:
		if x.RunID != runID {
			return nil, false
		}
		return x, true
	case *node.Block:
		var kept []node.Node
		for _, c := range x.Children {
			if k, ok := ClearStaleNodes(c, runID); ok {
				kept = append(kept, k)
			}
		}
		if len(kept) == 0 && !x.AllowEmpty {
			return nil, false
		}
		return node.NewBlock(kept, x.AllowEmpty, runID), true
	default:
		return nil, false
	}
}
