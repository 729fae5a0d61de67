package token

import (
	"fmt"
)

type TokenType int

const (
	TSpace TokenType = iota
	TInteger
	TFloat
	TString
	TTrue
	TFalse
	TNull
	TColon
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TSpace:   "TSpace",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

// Token is a lexical element of a document.  Bytes holds the source
// bytes of the token; for strings this is the whole quoted literal.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	// decoded string content, resolved while tokenizing
	str string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded value of a string token and the source text
// of any other token.
func (t *Token) String() string {
	if t.Type == TString {
		return t.str
	}
	return string(t.Bytes)
}
