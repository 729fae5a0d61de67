package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TokenType
	}{
		{"empty", "", nil},
		{"space", " \t\r\n", []TokenType{TSpace}},
		{"object", `{"a":1}`, []TokenType{TLCurl, TString, TColon, TInteger, TRCurl}},
		{"array", `[1.5, -2, true,false,null]`, []TokenType{
			TLSquare, TFloat, TComma, TSpace, TInteger, TComma, TSpace,
			TTrue, TComma, TFalse, TComma, TNull, TRSquare}},
		{"escaped quote", `"a\"b" "c"`, []TokenType{TString, TSpace, TString}},
		{"exponent", `1e10`, []TokenType{TFloat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			var got []TokenType
			for i := range toks {
				got = append(got, toks[i].Type)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("token types (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeFilter(t *testing.T) {
	toks, err := Tokenize(nil, []byte(" { \"foo\" : \"bar\" } "))
	if err != nil {
		t.Fatal(err)
	}
	toks = Filter(toks)
	want := []string{"{", "foo", ":", "bar", "}"}
	var got []string
	for i := range toks {
		got = append(got, toks[i].String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filtered tokens (-want +got):\n%s", diff)
	}
	if toks[1].Pos.I != 3 {
		t.Errorf("expected foo at offset 3, got %d", toks[1].Pos.I)
	}
	if string(toks[1].Bytes) != `"foo"` {
		t.Errorf("expected raw bytes to keep quotes, got %s", toks[1].Bytes)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		off int
	}{
		{in: `[1, @]`, err: ErrUnexpected, off: 4},
		{in: `"abc`, err: ErrUnterminated, off: 4},
		{in: `["\q"]`, err: ErrBadEscape, off: 2},
		{in: `tru`, err: ErrUnexpectedEOF, off: 3},
		{in: `trux`, err: ErrLiteral, off: 3},
		{in: `truex`, err: ErrLiteral, off: 4},
		{in: `nul1`, err: ErrLiteral, off: 3},
		{in: `[01]`, err: ErrNumberLeadingZero, off: 3},
		{in: `[1.]`, err: ErrNumber, off: 2},
		{in: "\n\n  -", err: ErrNumber, off: 5},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("Tokenize(%q) error %v, want %v", tt.in, err, tt.err)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Tokenize(%q) error %T is not a *FormatError", tt.in, err)
			continue
		}
		if fe.Offset() != tt.off {
			t.Errorf("Tokenize(%q) error offset %d, want %d", tt.in, fe.Offset(), tt.off)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	_, err := Tokenize(nil, []byte("[\n  1,\n  @]"))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected format error, got %v", err)
	}
	line, col := fe.Pos.LineCol()
	if line != 2 || col != 2 {
		t.Errorf("got line %d col %d, want 2 2", line, col)
	}
}
