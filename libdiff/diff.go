package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/jabert/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "add"
	case Delete:
		return "remove"
	default:
		return "replace"
	}
}

// Change is one difference.  From is nil for an Insert and To is nil for
// a Delete.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

// DiffFunc computes the changes turning from into to, where both are at
// path.
type DiffFunc func(path string, from, to *ir.Node) []Change

// Diff returns the changes turning from into to.  It returns nil when
// from and to are equal in the sense of [ir.Equal].
func Diff(from, to *ir.Node) []Change {
	return diffAt("", from, to)
}

func diffAt(path string, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return []Change{{Op: Replace, Path: path, From: from, To: to}}
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(path, from, to)
	case ir.ArrayType:
		return DiffArrayByIndex(path, from, to, diffAt)
	}
	if ir.Equal(from, to) {
		return nil
	}
	return []Change{{Op: Replace, Path: path, From: from, To: to}}
}

// diffObject compares the key sets of from and to.  Removals come first,
// then changes to common keys in the order of from, then additions in
// the order of to.
func diffObject(path string, from, to *ir.Node) []Change {
	toMap := ir.ToMap(to)
	fromMap := ir.ToMap(from)
	var res []Change
	for i, f := range from.Fields {
		if _, ok := toMap[f.String]; !ok {
			res = append(res, Change{Op: Delete, Path: Pointer(path, f.String), From: from.Values[i]})
		}
	}
	for i, f := range from.Fields {
		if t, ok := toMap[f.String]; ok {
			res = append(res, diffAt(Pointer(path, f.String), from.Values[i], t)...)
		}
	}
	for i, f := range to.Fields {
		if _, ok := fromMap[f.String]; !ok {
			res = append(res, Change{Op: Insert, Path: Pointer(path, f.String), To: to.Values[i]})
		}
	}
	return res
}

// Pointer appends the reference token tok to the JSON Pointer path.
func Pointer(path, tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return path + "/" + tok
}

func index(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}

// Paths returns the paths of changes.
func Paths(changes []Change) []string {
	res := make([]string, len(changes))
	for i := range changes {
		res[i] = changes[i].Path
	}
	return res
}
