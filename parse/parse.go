package parse

import (
	"fmt"

	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	toks = token.Filter(toks)
	if debug.Parse() {
		debug.Logf("parse: %d tokens from %d bytes\n", len(toks), len(d))
	}
	pOpts.eof = token.NewPosDoc(d).Pos(len(d))
	if len(toks) == 0 {
		return nil, token.NewFormatError(token.ErrEmptyDoc, pOpts.eof)
	}
	pOpts.eof = toks[0].Pos.D.Pos(len(d))
	off := 0
	res, err := parseValue(toks, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, token.NewFormatError(
			fmt.Errorf("%w: %q", token.ErrTrailing, toks[off].Bytes), toks[off].Pos)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// MustParse is like ParseString but panics on error.
func MustParse(s string) *ir.Node {
	res, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// alternative tries to recognize a value at toks[*pi].  It reports false,
// without consuming anything, when the value is not of its kind.
type alternative func(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, bool, error)

var alternatives []alternative

func init() {
	alternatives = []alternative{
		parseString,
		parseNumber,
		parseBool,
		parseNull,
		parseArr,
		parseObj,
	}
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, token.NewFormatError(token.ErrUnexpectedEOF, opts.eof)
	}
	t := &toks[*pi]
	for _, alt := range alternatives {
		node, ok, err := alt(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			trackPos(node, t.Pos, opts)
			return node, nil
		}
	}
	return nil, token.UnexpectedErr(fmt.Sprintf("%q", t.Bytes), t.Pos)
}

func parseString(toks []token.Token, pi *int, _ *parseOpts) (*ir.Node, bool, error) {
	t := &toks[*pi]
	if t.Type != token.TString {
		return nil, false, nil
	}
	*pi++
	return ir.FromString(t.String()), true, nil
}

func parseNumber(toks []token.Token, pi *int, _ *parseOpts) (*ir.Node, bool, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TInteger, token.TFloat:
	default:
		return nil, false, nil
	}
	*pi++
	return ir.FromNumber(string(t.Bytes)), true, nil
}

func parseBool(toks []token.Token, pi *int, _ *parseOpts) (*ir.Node, bool, error) {
	switch toks[*pi].Type {
	case token.TTrue:
		*pi++
		return ir.FromBool(true), true, nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false), true, nil
	}
	return nil, false, nil
}

func parseNull(toks []token.Token, pi *int, _ *parseOpts) (*ir.Node, bool, error) {
	if toks[*pi].Type != token.TNull {
		return nil, false, nil
	}
	*pi++
	return ir.Null(), true, nil
}

func enter(tok *token.Token, opts *parseOpts) error {
	opts.depth++
	if opts.maxDepth > 0 && opts.depth > opts.maxDepth {
		return token.NewFormatError(fmt.Errorf("%w: %d", token.ErrDepth, opts.maxDepth), tok.Pos)
	}
	return nil
}

func parseArr(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, bool, error) {
	open := &toks[*pi]
	if open.Type != token.TLSquare {
		return nil, false, nil
	}
	if err := enter(open, opts); err != nil {
		return nil, false, err
	}
	defer func() { opts.depth-- }()
	*pi++
	arr := ir.FromSlice(nil)
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, true, nil
	}
	for {
		elt, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, false, err
		}
		arr.Append(elt)
		if *pi >= len(toks) {
			return nil, false, token.NewFormatError(token.ErrUnexpectedEOF, opts.eof)
		}
		tok := &toks[*pi]
		switch tok.Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return arr, true, nil
		default:
			return nil, false, token.ExpectedErr("',' or ']'", tok.Pos)
		}
	}
}

func parseObj(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, bool, error) {
	open := &toks[*pi]
	if open.Type != token.TLCurl {
		return nil, false, nil
	}
	if err := enter(open, opts); err != nil {
		return nil, false, err
	}
	defer func() { opts.depth-- }()
	*pi++
	obj := ir.FromKeyVals(nil)
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, true, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, false, token.NewFormatError(token.ErrUnexpectedEOF, opts.eof)
		}
		keyTok := &toks[*pi]
		if keyTok.Type != token.TString {
			return nil, false, token.ExpectedErr("string key", keyTok.Pos)
		}
		*pi++
		if *pi >= len(toks) {
			return nil, false, token.NewFormatError(token.ErrUnexpectedEOF, opts.eof)
		}
		colTok := &toks[*pi]
		if colTok.Type != token.TColon {
			return nil, false, token.ExpectedErr("':'", colTok.Pos)
		}
		*pi++
		val, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, false, err
		}
		obj.Set(keyTok.String(), val)
		if *pi >= len(toks) {
			return nil, false, token.NewFormatError(token.ErrUnexpectedEOF, opts.eof)
		}
		tok := &toks[*pi]
		switch tok.Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return obj, true, nil
		default:
			return nil, false, token.ExpectedErr("',' or '}'", tok.Pos)
		}
	}
}
