// Package node defines the renderable nodes of a live document.
//
// # Node Structure
//
// A document is a tree of [Node] values. A Node is exactly one of
//
//   - [*Element]: a leaf carrying a [Payload] (text, a data frame, a chart, or
//     an empty placeholder). Elements never have children.
//   - [*Block]: an ordered container of child nodes. Blocks never carry a
//     payload.
//
// Every node records the [RunID] of the execution run which last produced
// it. The zero RunID, [NoRun], marks placeholders that no run has touched.
//
// # Immutability
//
// Nodes are never modified after construction. Code which needs a changed
// node builds a new one, and may freely share unchanged children with the
// old one. This lets an older tree be read while a newer tree is being built
// from it, without locking.
//
// Derived views of an element, such as [Element.Summary], are computed on
// first use and cached on the element. Since the element never changes the
// cache is never stale.
//
// # Paths
//
// A [Path] is a sequence of child indices from the root, written
//
//	$[0][1][1]
package node
