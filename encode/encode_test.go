package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
)

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{name: "object", node: ir.FromMap(map[string]*ir.Node{"foo": ir.FromString("bar")}), want: `{"foo":"bar"}`},
		{name: "null", node: ir.Null(), want: `null`},
		{name: "true", node: ir.FromBool(true), want: `true`},
		{name: "int", node: ir.FromInt(-12), want: `-12`},
		{name: "float", node: ir.FromFloat(1), want: `1.0`},
		{name: "float-exp", node: ir.FromFloat(1e21), want: `1e+21`},
		{name: "literal", node: ir.FromNumber("1.50"), want: `1.50`},
		{name: "big", node: ir.FromUint(math.MaxUint64), want: `18446744073709551615`},
		{name: "escapes", node: ir.FromString("a\"b\\c\n\x01é"), want: `"a\"b\\c\n\u0001\u00e9"`},
		{name: "empty-array", node: ir.FromSlice(nil), want: `[]`},
		{name: "empty-object", node: ir.FromMap(nil), want: `{}`},
		{
			name: "list",
			node: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3), ir.FromInt(4), ir.FromInt(5)}),
			want: `[1,2,3,4,5]`,
		},
		{
			name: "nested",
			node: ir.FromKeyVals([]ir.KeyVal{
				{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.Null(), ir.FromMap(nil)})},
				{Key: "a", Val: ir.FromBool(false)},
			}),
			want: `{"b":[null,{}],"a":false}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(tt.node, buf); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %s, want %s", buf.String(), tt.want)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	node := parse.MustParse(`{"a":[1,2,{}],"b":{"c":null},"d":[]}`)
	want := `
{
  "a": [
    1,
    2,
    {}
  ],
  "b": {
    "c": null
  },
  "d": []
}
`
	buf := &bytes.Buffer{}
	if err := Encode(node, buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != strings.TrimPrefix(want, "\n") {
		t.Errorf("indent output differs:\n%v", diff.LineDiff(strings.TrimPrefix(want, "\n"), got))
	}
}

func TestEncodeReparse(t *testing.T) {
	docs := []string{
		`{"a":{"b":[true,false,null]},"c":"\u0000\t"}`,
		`[1,-2.5,3e10,"x"]`,
		`"😀"`,
	}
	for _, doc := range docs {
		for _, opts := range [][]EncodeOption{nil, {EncodeIndent(4)}} {
			node := parse.MustParse(doc)
			out := MustString(node, opts...)
			back, err := parse.ParseString(out)
			if err != nil {
				t.Fatalf("%s: %v", out, err)
			}
			if !ir.Equal(node, back) {
				t.Errorf("reparse of %s differs:\n%v", doc, diff.LineDiff(MustString(node, EncodeIndent(2)), MustString(back, EncodeIndent(2))))
			}
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := Encode(ir.FromFloat(f), &bytes.Buffer{})
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: expected encoding error, got %v", f, err)
		}
	}
	for _, lit := range []string{"NaN", "Inf", "0x1p3"} {
		err := Encode(ir.FromNumber(lit), &bytes.Buffer{})
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: expected encoding error, got %v", lit, err)
		}
	}
	err := Encode(&ir.Node{Type: ir.ArrayType, Values: []*ir.Node{nil}}, &bytes.Buffer{})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("nil element: expected encoding error, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.StringType, Attr: ValueColor}:  func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "(" + s + ")" },
		},
	}
	node := ir.FromMap(map[string]*ir.Node{"k": ir.FromString("v")})
	got := MustString(node, EncodeColors(colors))
	want := `{("k"):<"v">}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if NewColors().Get(ir.ArrayType, FieldColor) == nil {
		t.Error("missing default color")
	}
}
