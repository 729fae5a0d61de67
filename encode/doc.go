// Package encode encodes IR nodes to JSON text.
//
// Output is compact by default: no whitespace is inserted between
// tokens.  Strings are escaped with [token.AppendQuote] and numbers keep
// their exact literal when one is known.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{"foo": ir.FromString("bar")})
//	err := encode.Encode(node, os.Stdout)
//	// {"foo":"bar"}
//
//	// Indented, colored output
//	err = encode.Encode(node, os.Stdout, encode.EncodeIndent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/jabert/ir - IR representation
//   - github.com/signadot/jabert/parse - Parse text to IR
package encode
