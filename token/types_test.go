package token

import (
	"testing"
)

type tsTest struct {
	in, out string
}

func TestTypesString(t *testing.T) {
	var tss = []tsTest{
		{in: `"abc"`, out: `abc`},
		{in: `"\"'"`, out: `"'`},
		{in: `"\t"`, out: "\t"},
		{in: `"∞"`, out: "∞"},
		{in: `"😀"`, out: "😀"},
		{in: `12`, out: `12`},
		{in: `true`, out: `true`},
	}
	for _, ts := range tss {
		toks, err := Tokenize(nil, []byte(ts.in))
		if err != nil {
			t.Error(err)
			continue
		}
		if ts.out != toks[0].String() {
			t.Errorf("got %q want %q", toks[0].String(), ts.out)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if TLCurl.String() != "TLCurl" {
		t.Errorf("got %q", TLCurl.String())
	}
}
