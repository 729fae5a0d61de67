package direct

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/token"
)

// Parse reads exactly one JSON document from r.
func Parse(r io.Reader, opts ...Option) (*ir.Node, error) {
	return NewReader(r, opts...).ReadDocument()
}

func ParseBytes(d []byte, opts ...Option) (*ir.Node, error) {
	return Parse(bytes.NewReader(d), opts...)
}

// ReadDocument reads one value surrounded by optional whitespace and
// requires the input to end after it.
func (r *Reader) ReadDocument() (*ir.Node, error) {
	c, err := r.skipSpace()
	if err == io.EOF {
		return nil, r.errAt(token.ErrEmptyDoc, r.off)
	}
	if err != nil {
		return nil, err
	}
	node, err := r.value(c)
	if err != nil {
		return nil, err
	}
	c, err = r.skipSpace()
	switch err {
	case io.EOF:
	case nil:
		return nil, r.errAt(fmt.Errorf("%w: %q", token.ErrTrailing, c), r.at())
	default:
		return nil, err
	}
	if debug.Direct() {
		debug.Logf("direct: read %s from %d bytes\n", node.Type, r.off)
	}
	return node, nil
}

// value reads the value whose first rune c has just been read.
func (r *Reader) value(c rune) (*ir.Node, error) {
	start := r.at()
	var (
		node *ir.Node
		err  error
	)
	switch c {
	case '"':
		var s string
		s, err = r.readString()
		node = ir.FromString(s)
	case 't':
		err = r.keyword("true", start)
		node = ir.FromBool(true)
	case 'f':
		err = r.keyword("false", start)
		node = ir.FromBool(false)
	case 'n':
		err = r.keyword("null", start)
		node = ir.Null()
	case '[':
		node, err = r.readArray(start)
	case '{':
		node, err = r.readObject(start)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		node, err = r.readNumber(c, start)
	default:
		return nil, token.UnexpectedErr(fmt.Sprintf("%q", c), r.pos(start))
	}
	if err != nil {
		return nil, err
	}
	if r.opts.positions != nil {
		r.opts.positions[node] = r.pos(start)
	}
	return node, nil
}

func (r *Reader) enter(start int) error {
	r.depth++
	if r.opts.maxDepth > 0 && r.depth > r.opts.maxDepth {
		return r.errAt(fmt.Errorf("%w: %d", token.ErrDepth, r.opts.maxDepth), start)
	}
	return nil
}

func (r *Reader) keyword(kw string, start int) error {
	for i := 1; i < len(kw); i++ {
		c, err := r.read()
		if err == io.EOF {
			return r.errAt(token.ErrUnexpectedEOF, start+i)
		}
		if err != nil {
			return err
		}
		if c != rune(kw[i]) {
			return r.errAt(token.ErrLiteral, start+i)
		}
	}
	c, err := r.read()
	switch err {
	case io.EOF:
		return nil
	case nil:
	default:
		return err
	}
	if token.IsLetter(c) {
		return r.errAt(token.ErrLiteral, start+len(kw))
	}
	r.unread()
	return nil
}

// readNumber collects the runes which may belong to a number, pushes
// back the first one which may not and validates the literal.
func (r *Reader) readNumber(c rune, start int) (*ir.Node, error) {
	lit := []byte{byte(c)}
	for {
		d, err := r.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if d < utf8.RuneSelf && token.IsNumberByte(byte(d)) {
			lit = append(lit, byte(d))
			continue
		}
		r.unread()
		break
	}
	n, _, err := token.Number(lit)
	if err != nil {
		return nil, r.errAt(err, start+n)
	}
	return ir.FromNumber(string(lit)), nil
}

// readString reads the rest of a string whose opening quote has been
// read.
func (r *Reader) readString() (string, error) {
	u := &token.Unescaper{}
	for {
		c, err := r.read()
		if err == io.EOF {
			return "", r.errAt(token.ErrUnterminated, r.off)
		}
		if err != nil {
			return "", err
		}
		at := r.at()
		switch {
		case c == '"':
			return u.String(), nil
		case c == '\\':
			e, err := r.read()
			if err == io.EOF {
				return "", r.errAt(token.ErrUnterminated, r.off)
			}
			if err != nil {
				return "", err
			}
			if e == 'u' {
				cu, err := r.readHex4(at)
				if err != nil {
					return "", err
				}
				u.WriteUnit(cu)
				continue
			}
			ch, ok := token.Unescape(e)
			if !ok {
				return "", r.errAt(token.ErrBadEscape, at)
			}
			u.WriteRune(ch)
		case c < 0x20:
			return "", r.errAt(token.ErrUnicodeControl, at)
		case c == utf8.RuneError && r.size == 1:
			return "", r.errAt(token.ErrBadUTF8, at)
		default:
			u.WriteRune(c)
		}
	}
}

func (r *Reader) readHex4(at int) (rune, error) {
	var hex []byte
	for range 4 {
		h, err := r.read()
		if err == io.EOF {
			return 0, r.errAt(token.ErrUnterminated, r.off)
		}
		if err != nil {
			return 0, err
		}
		hex = utf8.AppendRune(hex, h)
	}
	cu, ok := token.Hex4(hex)
	if !ok {
		return 0, r.errAt(token.ErrBadUnicode, at)
	}
	return cu, nil
}

func (r *Reader) readArray(start int) (*ir.Node, error) {
	if err := r.enter(start); err != nil {
		return nil, err
	}
	defer func() { r.depth-- }()
	arr := ir.FromSlice(nil)
	c, err := r.next()
	if err != nil {
		return nil, err
	}
	if c == ']' {
		return arr, nil
	}
	for {
		elt, err := r.value(c)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		c, err = r.next()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',':
			c, err = r.next()
			if err != nil {
				return nil, err
			}
		case ']':
			return arr, nil
		default:
			return nil, token.ExpectedErr("',' or ']'", r.pos(r.at()))
		}
	}
}

func (r *Reader) readObject(start int) (*ir.Node, error) {
	if err := r.enter(start); err != nil {
		return nil, err
	}
	defer func() { r.depth-- }()
	obj := ir.FromKeyVals(nil)
	c, err := r.next()
	if err != nil {
		return nil, err
	}
	if c == '}' {
		return obj, nil
	}
	for {
		if c != '"' {
			return nil, token.ExpectedErr("string key", r.pos(r.at()))
		}
		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		c, err = r.next()
		if err != nil {
			return nil, err
		}
		if c != ':' {
			return nil, token.ExpectedErr("':'", r.pos(r.at()))
		}
		c, err = r.next()
		if err != nil {
			return nil, err
		}
		val, err := r.value(c)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		c, err = r.next()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',':
			c, err = r.next()
			if err != nil {
				return nil, err
			}
		case '}':
			return obj, nil
		default:
			return nil, token.ExpectedErr("',' or '}'", r.pos(r.at()))
		}
	}
}
