// Package token provides JSON tokenization and the escaping rules shared by
// the jabert codecs.
//
// [Tokenize] splits a document into tokens, resolving string escapes as it
// goes.  [Quote] and [AppendQuote] implement the canonical escaping table
// used by every emitter, and [Number] implements the number grammar used by
// every parser.
//
// All errors produced while reading input are [*FormatError] values which
// carry the offending offset and wrap one of the sentinel errors of this
// package.
package token
