// Package gomap converts between Go values and IR nodes.
//
// Conversion is dispatched through a [Registry]: an ordered list of
// (predicate, mapper) bindings consulted in registration order, plus a
// default mapper used when no predicate matches.  [DefaultRegistry]
// binds, in order:
//
//   - primitives: the predeclared bool, integer, float and string types
//   - arrays: unnamed slice and array types
//   - self-describing types implementing [Marshaler] and [Unmarshaler]
//   - *ir.Node and ir.Node, which map to themselves
//   - types implementing encoding.TextMarshaler and TextUnmarshaler
//   - pointers
//
// and uses the reflective object mapper as default.
//
// The reflective mapper maps structs to objects field by field.  Only
// exported fields are mapped.  A struct tag controls the mapping:
//
//	type Person struct {
//	    Name     string            `jabert:"field=name"`
//	    Nickname *string           `jabert:"null"`  // absent -> null
//	    Manager  *Person                            // absent -> omitted
//	    Tags     map[string]struct{}                // set -> sorted list
//	    Cache    []byte            `jabert:"-"`
//	}
//
// Pointer fields are optional.  Absent optional fields are omitted from
// the object unless tagged null, and both a missing key and null map
// back to a nil pointer.  Any other field missing from the object is an
// error ([ErrMissingField]).
//
// A pointer field referring to the struct containing it is reported as
// [ErrCyclicReference].  Longer cycles are stopped by the depth limit.
//
// # Usage
//
//	node, err := gomap.ToIR(person)
//	d, err := gomap.ToJSON(person)
//
//	var p Person
//	err = gomap.FromJSON(d, &p)
//
// # Related Packages
//
//   - github.com/signadot/jabert/ir - IR representation
//   - github.com/signadot/jabert/codec - JSON codecs
package gomap
