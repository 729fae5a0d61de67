package token

import "fmt"

// Tokenize appends the tokens of src to dst.  Runs of whitespace are
// returned as TSpace tokens; see [Filter].
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			j := i
			for j < n && isSpace(src[j]) {
				if src[j] == '\n' {
					posDoc.NL(j)
				}
				j++
			}
			dst = append(dst, Token{Type: TSpace, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"':
			sz, s, err := scanQuoted(src[i:])
			if err != nil {
				return dst, NewFormatError(err, posDoc.Pos(i+sz))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i : i+sz], str: s})
			i += sz
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			sz, isFloat, err := Number(src[i:])
			if err != nil {
				return dst, NewFormatError(err, posDoc.Pos(i+sz))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: src[i : i+sz]})
			i += sz
		case 't', 'f', 'n':
			tt, sz, err := keyword(src[i:])
			if err != nil {
				return dst, NewFormatError(err, posDoc.Pos(i+sz))
			}
			dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: src[i : i+sz]})
			i += sz
		default:
			return dst, UnexpectedErr(fmt.Sprintf("%q", rune(c)), posDoc.Pos(i))
		}
	}
	return dst, nil
}

// Filter removes TSpace tokens from toks, in place.
func Filter(toks []Token) []Token {
	j := 0
	for i := range toks {
		if toks[i].Type == TSpace {
			continue
		}
		toks[j] = toks[i]
		j++
	}
	return toks[:j]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// IsLetter reports whether c continues an identifier, which makes a
// keyword such as "true" in "truex" malformed.
func IsLetter(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

var keywords = []struct {
	kw string
	tt TokenType
}{
	{"true", TTrue},
	{"false", TFalse},
	{"null", TNull},
}

func keyword(d []byte) (TokenType, int, error) {
	for _, k := range keywords {
		if k.kw[0] != d[0] {
			continue
		}
		n := len(k.kw)
		for i := 1; i < n; i++ {
			if i == len(d) {
				return 0, i, ErrUnexpectedEOF
			}
			if d[i] != k.kw[i] {
				return 0, i, ErrLiteral
			}
		}
		if n < len(d) && IsLetter(rune(d[n])) {
			return 0, n, ErrLiteral
		}
		return k.tt, n, nil
	}
	return 0, 0, ErrLiteral
}
