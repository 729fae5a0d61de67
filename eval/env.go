package eval

import (
	"errors"
	"maps"

	"github.com/signadot/jabert/ir"
)

var ErrEval = errors.New("eval")

// Env binds names in expressions.
type Env map[string]any

// With returns a copy of env where doc is bound to the generic value of
// node, unless env binds it already.
func (env Env) With(node *ir.Node) Env {
	res := make(Env, len(env)+1)
	maps.Copy(res, env)
	if _, ok := res["doc"]; !ok {
		res["doc"] = ir.ToAny(node.Root())
	}
	return res
}

// FromResult converts the result of an expression to a node.
func FromResult(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case []*ir.Node:
		res := ir.FromSlice(nil)
		for _, elt := range x {
			res.Append(elt.Clone())
		}
		return res, nil
	case map[string]*ir.Node:
		m := make(map[string]*ir.Node, len(x))
		for k, elt := range x {
			m[k] = elt.Clone()
		}
		return ir.FromMap(m), nil
	}
	return ir.FromAny(v)
}
