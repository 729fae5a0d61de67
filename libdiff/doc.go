// Package libdiff computes structural differences between nodes.
//
// [Diff] returns the changes which turn one node into another as a list
// of [Change] in document order.  Paths are JSON Pointers (RFC 6901)
// which are valid when the changes are applied in order, so that
// [ToPatch] gives a JSON Patch (RFC 6902) document.
//
// Arrays are compared by index: each element is summarized by its type
// and, for leaves, its value and the sequences of summaries are diffed
// with [github.com/sergi/go-diff/diffmatchpatch].  Elements in equal runs
// are compared recursively.
package libdiff
