// Package parse parses JSON text into IR nodes with a tokenizer followed by
// a grammar driven parser.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
// The input is first split into tokens by [token.Tokenize], whitespace
// tokens are dropped, and the remaining tokens are matched against the
// grammar.  Each value is recognized by trying, in order, a string, a
// number, a boolean, null, an array and an object; the first alternative
// which matches wins.
//
// Errors are [*token.FormatError] values carrying the offset of the
// offending input.
//
// # Related Packages
//
//   - github.com/signadot/jabert/direct - single pass parser accepting the same language
//   - github.com/signadot/jabert/encode - encode IR to text
//   - github.com/signadot/jabert/token - tokenization
package parse
