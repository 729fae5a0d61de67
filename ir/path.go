package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of y from its root, for example `$.a[2].'b.c'`.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetPath returns the node at path p relative to y.  Paths have the form
// produced by Path; the leading "$" is optional.
func (y *Node) GetPath(p string) (*Node, error) {
	segs, err := splitPath(p)
	if err != nil {
		return nil, err
	}
	cur := y
	for _, seg := range segs {
		if seg.field != nil {
			if cur.Type != ObjectType {
				return nil, fmt.Errorf("%w: field %q of %s", ErrPath, *seg.field, cur.Type)
			}
			next := Get(cur, *seg.field)
			if next == nil {
				return nil, fmt.Errorf("%w: field %q at %s", ErrNotFound, *seg.field, cur.Path())
			}
			cur = next
			continue
		}
		if cur.Type != ArrayType {
			return nil, fmt.Errorf("%w: index %d of %s", ErrPath, seg.index, cur.Type)
		}
		if seg.index < 0 || seg.index >= len(cur.Values) {
			return nil, fmt.Errorf("%w: index %d at %s", ErrNotFound, seg.index, cur.Path())
		}
		cur = cur.Values[seg.index]
	}
	return cur, nil
}

type pathSeg struct {
	field *string
	index int
}

func splitPath(p string) ([]pathSeg, error) {
	p = strings.TrimPrefix(p, "$")
	var res []pathSeg
	i := 0
	n := len(p)
	for i < n {
		switch p[i] {
		case '.':
			i++
			if i < n && p[i] == '\'' {
				j := i + 1
				b := &strings.Builder{}
				for j < n && p[j] != '\'' {
					if p[j] == '\\' && j+1 < n {
						j++
					}
					b.WriteByte(p[j])
					j++
				}
				if j == n {
					return nil, fmt.Errorf("%w: unterminated quoted field in %q", ErrPath, p)
				}
				f := b.String()
				res = append(res, pathSeg{field: &f})
				i = j + 1
				continue
			}
			j := i
			for j < n && p[j] != '.' && p[j] != '[' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: empty field in %q", ErrPath, p)
			}
			f := p[i:j]
			res = append(res, pathSeg{field: &f})
			i = j
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			idx, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index in %q: %w", ErrPath, p, err)
			}
			res = append(res, pathSeg{index: idx})
			i += j + 1
		default:
			if i != 0 {
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, p[i], p)
			}
			// allow a bare leading field
			p = "." + p
			n = len(p)
		}
	}
	return res, nil
}
