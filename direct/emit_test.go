package direct

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/signadot/jabert/encode"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
)

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{name: "compact", node: ir.FromMap(map[string]*ir.Node{"foo": ir.FromString("bar")}), want: `{"foo":"bar"}`},
		{name: "control", node: ir.FromString("\x01"), want: `"\u0001"`},
		{name: "float", node: ir.FromFloat(1), want: `1.0`},
		{name: "int", node: ir.FromInt(7), want: `7`},
		{name: "empty", node: ir.FromSlice([]*ir.Node{ir.FromSlice(nil), ir.FromMap(nil)}), want: `[[],{}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Emit(tt.node, buf); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %s, want %s", buf.String(), tt.want)
			}
		})
	}
}

func TestEmitMatchesEncode(t *testing.T) {
	for _, doc := range agreeDocs {
		node := parse.MustParse(doc)
		buf := &bytes.Buffer{}
		if err := Emit(node, buf); err != nil {
			t.Fatal(err)
		}
		if want := encode.MustString(node); buf.String() != want {
			t.Errorf("%q: emitted %s, encoded %s", doc, buf.String(), want)
		}
	}
}

func TestEmitNaN(t *testing.T) {
	err := Emit(ir.FromFloat(math.NaN()), &bytes.Buffer{})
	if !errors.Is(err, ErrEmit) {
		t.Errorf("got %v", err)
	}
}

func TestEmitInvalidLiteral(t *testing.T) {
	for _, lit := range []string{"NaN", "Inf", "0x1p3"} {
		err := Emit(ir.FromNumber(lit), &bytes.Buffer{})
		if !errors.Is(err, ErrEmit) {
			t.Errorf("%s: expected emit error, got %v", lit, err)
		}
	}
}
