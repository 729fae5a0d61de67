// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch (RFC
// 7386) documents to nodes.
package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch")

var wire = codec.Grammar{}

// Apply applies the JSON Patch p, an array of operations, to doc.  doc is
// not modified.
func Apply(doc, p *ir.Node) (*ir.Node, error) {
	if p.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected an array of operations, got %s", ErrPatch, p.Type)
	}
	pd, err := codec.Marshal(wire, p)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return apply(doc, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// Merge applies the JSON Merge Patch p to doc.
func Merge(doc, p *ir.Node) (*ir.Node, error) {
	pd, err := codec.Marshal(wire, p)
	if err != nil {
		return nil, err
	}
	return apply(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, pd)
	})
}

// CreateMerge returns the JSON Merge Patch turning from into to.  Both
// must be objects.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	fd, err := codec.Marshal(wire, from)
	if err != nil {
		return nil, err
	}
	td, err := codec.Marshal(wire, to)
	if err != nil {
		return nil, err
	}
	md, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return codec.Unmarshal(wire, md)
}

// Between returns the JSON Patch turning from into to, see
// [libdiff.Diff].
func Between(from, to *ir.Node) *ir.Node {
	return libdiff.ToPatch(libdiff.Diff(from, to))
}

func apply(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	if debug.Op() {
		debug.Logf("patch applied at %s\n", doc.Path())
	}
	d, err := codec.Marshal(wire, doc)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return codec.Unmarshal(wire, out)
}
