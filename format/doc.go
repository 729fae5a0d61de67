// Package format names the document formats the jb tool reads and
// writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if f.IsYAML() { ... }
//
// # Related Packages
//
//   - github.com/signadot/jabert/codec - Codecs for each format
package format
