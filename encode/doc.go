// Package encode renders live documents for people and programs.
//
// [Encode] writes an indented outline of a tree, one node per line, with
// optional terminal colors. [JSON] produces a JSON view of a report root,
// and [MergePatch] the RFC 7386 merge patch which takes one such view to
// another. [Diff] compares two outlines line by line.
package encode
