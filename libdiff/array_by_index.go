package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/jabert/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex diffs the arrays from and to.
//
//  1. summarize each element, for leaves <type>-<value>, for containers
//     and multiline strings just the type
//  2. diff the sequences of summaries
//  3. recurse with df on elements in equal runs
//  4. a delete directly followed by an insert becomes a replace
//
// The returned paths index the array as it is after the preceding
// changes.
func DiffArrayByIndex(path string, from, to *ir.Node, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti, ri := 0, 0, 0
	dels := 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Path: index(path, ri), From: from.Values[fi]})
				fi++
			}
			dels = n
			continue
		case diffpatch.DiffEqual:
			for range n {
				res = append(res, df(index(path, ri), from.Values[fi], to.Values[ti])...)
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			// pair with the immediately preceding deletes
			start := len(res) - dels
			for k := range n {
				if k < dels {
					c := &res[start+k]
					*c = Change{Op: Replace, Path: index(path, ri), From: c.From, To: to.Values[ti]}
				} else {
					res = append(res, Change{Op: Insert, Path: index(path, ri), To: to.Values[ti]})
				}
				ri++
				ti++
			}
			if n < dels {
				// remaining deletes are now after the replaced elements
				for k := n; k < dels; k++ {
					res[start+k].Path = index(path, ri)
				}
			}
		}
		dels = 0
	}
	return res
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = summaryRune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryRune maps i to a rune outside of the surrogate range, which
// does not survive conversion to a string.
func summaryRune(i int) rune {
	r := rune(i)
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if f, ok := node.Float(); ok {
			return node.Type.String() + "-" + ir.FormatFloat(f)
		}
		return node.Type.String() + "-" + node.Literal()
	default:
		panic("type")
	}
}
