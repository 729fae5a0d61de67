package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/ir"
)

// GetRaw extracts expr from a string of the form .[expr], or returns ""
// if v is not of that form.
func GetRaw(v string) string {
	if len(v) < 3 || !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return strings.TrimSpace(v[2 : len(v)-1])
}

// ExpandIR returns a copy of node where each string of the form .[expr]
// is replaced by the value of expr and other strings are expanded with
// ExpandString.  Expressions see the node they replace, so whereami()
// gives its path.
func ExpandIR(node *ir.Node, env Env) (*ir.Node, error) {
	return expand(node, node, env)
}

func expand(doc, node *ir.Node, env Env) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(node.Values))
		for i, elt := range node.Values {
			x, err := expand(doc, elt, env)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: node.Fields[i].String, Val: x}
		}
		return ir.FromKeyVals(kvs), nil
	case ir.ArrayType:
		res := make([]*ir.Node, len(node.Values))
		for i, elt := range node.Values {
			x, err := expand(doc, elt, env)
			if err != nil {
				return nil, err
			}
			res[i] = x
		}
		return ir.FromSlice(res), nil
	case ir.StringType:
		if raw := GetRaw(node.String); raw != "" {
			return Eval(raw, node, env)
		}
		xs, err := expandString(node.String, node, env)
		if err != nil {
			return nil, err
		}
		return ir.FromString(xs), nil
	}
	return node.Clone(), nil
}

// ExpandString expands $[expr] and .[expr] in v.
//
// Within expressions, backslash escaping is supported:
//   - \] gives a literal ] which does not close the expression
//   - \x gives x for any other character x
//
// An expression not closed with an unescaped ] is kept literally.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, ir.Null(), env)
}

func expandString(v string, node *ir.Node, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	out := &strings.Builder{}
	key := &strings.Builder{}
	start := -1
	n := len(v)
	for i := 0; i < n; i++ {
		c := v[i]
		if start == -1 {
			if (c == '$' || c == '.') && i+1 < n && v[i+1] == '[' {
				start = i
				key.Reset()
				i++
				continue
			}
			out.WriteByte(c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < n {
				i++
				key.WriteByte(v[i])
			}
		case ']':
			s, err := evalString(strings.TrimSpace(key.String()), node, env)
			if err != nil {
				return "", err
			}
			out.WriteString(s)
			start = -1
		default:
			key.WriteByte(c)
		}
	}
	if start != -1 {
		out.WriteString(v[start:])
	}
	return out.String(), nil
}

// evalString gives the text of the value of src: strings as they are and
// everything else as JSON.
func evalString(src string, node *ir.Node, env Env) (string, error) {
	res, err := Eval(src, node, env)
	if err != nil {
		return "", err
	}
	if res.Type == ir.StringType {
		return res.String, nil
	}
	d, err := codec.Marshal(codec.Direct{}, res)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrEval, src, err)
	}
	return string(d), nil
}
