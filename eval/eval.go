package eval

import (
	"fmt"

	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Run compiles and runs src at node and returns the raw result.
func Run(src string, node *ir.Node, env Env) (any, error) {
	prg, err := expr.Compile(src, exprOpts(node)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	res, err := vm.Run(prg, env.With(node))
	if err != nil {
		return nil, fmt.Errorf("%w: running %q: %w", ErrEval, src, err)
	}
	if debug.Op() {
		debug.Logf("eval %q at %s gave %#v\n", src, node.Path(), res)
	}
	return res, nil
}

// Eval evaluates src over doc and converts the result to a node.
func Eval(src string, doc *ir.Node, env Env) (*ir.Node, error) {
	res, err := Run(src, doc, env)
	if err != nil {
		return nil, err
	}
	node, err := FromResult(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
	}
	return node, nil
}

// Filter evaluates src for each element of the array doc, binding the
// element to "it", and returns the elements for which the result is
// truthy in the sense of [ir.Truth].
func Filter(src string, doc *ir.Node, env Env) (*ir.Node, error) {
	if doc.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: filter over %s", ErrEval, doc.Type)
	}
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	env = env.With(doc)
	res := ir.FromSlice(nil)
	for _, elt := range doc.Values {
		env["it"] = ir.ToAny(elt)
		v, err := vm.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("%w: running %q at %s: %w", ErrEval, src, elt.Path(), err)
		}
		keep, err := FromResult(v)
		if err != nil {
			return nil, err
		}
		if ir.Truth(keep) {
			res.Append(elt.Clone())
		}
	}
	return res, nil
}
