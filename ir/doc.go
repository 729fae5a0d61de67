// Package ir provides the structured value model shared by the codecs and
// mappers of jabert.
//
// # Overview
//
// A Node is a tagged union.  The Type field selects which of the other
// fields carry the value:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: Number (exact literal, when known), Int64, Float64
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields (string keys) and Values, in parallel
//
// Object keys are unique.  Their order is an implementation detail: FromMap
// sorts them, the parsers keep input order, and Equal ignores order.
//
// # Equality
//
// Equal is deep and sensitive to the node type, so an empty array is never
// equal to an empty object.  Two numbers are equal if their literals are
// identical or their float64 projections are equal:
//
//	ir.Equal(ir.FromInt(1), ir.FromFloat(1.0)) // true
//
// Compare and Hash are consistent with Equal.
//
// # Building values
//
//	obj := ir.FromMap(map[string]*ir.Node{"foo": ir.FromString("bar")})
//	arr := ir.FromSlice(nil).Append(ir.FromInt(1)).Append(ir.FromInt(2))
//
// Nodes are mutable while they are being built.  Once handed to other code
// they should be treated as immutable.
//
// # Related Packages
//
//   - github.com/signadot/jabert/codec - JSON and YAML codecs
//   - github.com/signadot/jabert/gomap - Go values to and from nodes
package ir
