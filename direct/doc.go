// Package direct reads and writes JSON in a single pass without a
// separate tokenizing step.
//
// A [Reader] consumes runes from a [bufio.Reader], keeps the offset of
// every rune and supports one rune of pushback, which is all the JSON
// grammar needs: numbers and keywords are the only productions whose
// end is found by reading one rune too far.
//
// The result of [Parse] is equal, in the sense of [ir.Equal], to the
// result of the tokenizing parser in package parse, and both reject the
// same documents.
//
// # Usage
//
//	node, err := direct.Parse(os.Stdin)
//	err = direct.Emit(node, os.Stdout)
//
// # Related Packages
//
//   - github.com/signadot/jabert/parse - Tokenizing parser
//   - github.com/signadot/jabert/codec - Codec interface over both
package direct
