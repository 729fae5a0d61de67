// Package codec puts the JSON readers and writers of this module behind
// one interface.
//
// [Grammar] tokenizes before parsing and encodes with package encode.
// [Direct] reads and writes in a single pass.  Both produce and accept
// the same documents, so either emitter's output can be read by either
// parser.  [YAML] reads and writes YAML through github.com/goccy/go-yaml.
//
// # Usage
//
//	c := codec.For(codec.DirectVariant)
//	node, err := c.Parse(os.Stdin)
//	err = codec.Grammar{}.Emit(node, os.Stdout)
//
// # Related Packages
//
//   - github.com/signadot/jabert/parse - Tokenizing parser
//   - github.com/signadot/jabert/direct - Single pass parser
//   - github.com/signadot/jabert/encode - Encoder
package codec
