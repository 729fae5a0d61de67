// Package eval evaluates expressions over nodes with
// [github.com/expr-lang/expr].
//
// [Eval] runs an expression with the document bound to "doc" and the
// following functions:
//
//	getpath(path)  the generic value at path, for example getpath("$.a[0]")
//	whereami()     the path of the node being evaluated
//	typeof(v)      the node type name of v: Null, Number, String, ...
//	getenv(name)   an environment variable
//
// [ExpandIR] replaces strings of the form .[expr] in a document by the
// value of expr and expands $[expr] and .[expr] inside other strings.
package eval
