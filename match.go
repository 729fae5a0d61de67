package jabert

import (
	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/eval"
	"github.com/signadot/jabert/ir"
)

// Match reports whether doc matches the pattern match:
//
//   - null matches anything
//   - an object matches objects having at least its keys, with matching
//     values
//   - an array matches arrays of the same length with matching elements
//   - a string of the form .[expr] matches when expr, with the document
//     bound to it, is truthy
//   - other values match equal values, see [ir.Equal]
func Match(doc, match *ir.Node) (bool, error) {
	if debug.Op() {
		debug.Logf("match type %s at %s\n", match.Type, match.Path())
	}
	if match.Type == ir.StringType {
		if raw := eval.GetRaw(match.String); raw != "" {
			res, err := eval.Eval(raw, doc, eval.Env{"it": ir.ToAny(doc)})
			if err != nil {
				return false, err
			}
			return ir.Truth(res), nil
		}
	}
	if doc.Type != match.Type && match.Type != ir.NullType {
		return false, nil
	}
	switch match.Type {
	case ir.ObjectType:
		return matchObj(doc, match)
	case ir.ArrayType:
		return matchArray(doc, match)
	case ir.NullType:
		return true, nil
	}
	return ir.Equal(doc, match), nil
}

func matchObj(doc, match *ir.Node) (bool, error) {
	mMap := ir.ToMap(match)
	count := 0
	for i := range doc.Fields {
		field := doc.Fields[i]
		my := mMap[field.String]
		if my == nil {
			continue
		}
		subMatch, err := Match(doc.Values[i], my)
		if err != nil {
			return false, err
		}
		if !subMatch {
			return false, nil
		}
		count++
	}
	return count == len(mMap), nil
}

func matchArray(doc, match *ir.Node) (bool, error) {
	if len(doc.Values) != len(match.Values) {
		return false, nil
	}
	for i := range doc.Values {
		subMatch, err := Match(doc.Values[i], match.Values[i])
		if err != nil {
			return false, err
		}
		if !subMatch {
			return false, nil
		}
	}
	return true, nil
}

// Trim filters doc to the fields and elements present in match.  Object
// fields are kept when match has them.  Each element of an array in match
// keeps the first unused matching element of doc.
func Trim(match, doc *ir.Node) *ir.Node {
	switch {
	case match.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		matchMap := ir.ToMap(match)
		var kvs []ir.KeyVal
		for i, field := range doc.Fields {
			matchVal := matchMap[field.String]
			if matchVal == nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: field.String, Val: Trim(matchVal, doc.Values[i])})
		}
		return ir.FromKeyVals(kvs)
	case match.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		res := make([]*ir.Node, 0, len(match.Values))
		used := make([]bool, len(doc.Values))
		for _, matchElem := range match.Values {
			for i, docElem := range doc.Values {
				if used[i] {
					continue
				}
				matched, err := Match(docElem, matchElem)
				if err != nil || !matched {
					continue
				}
				res = append(res, Trim(matchElem, docElem))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}
