package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/token"
)

type EncState struct {
	col           int
	depth, indent int

	// wire output has no whitespace at all.
	wire bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as JSON.  Indented output is terminated by a
// newline, compact output is not.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		wire: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	es.col += len(sep)
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeLeaf(w, es, ir.StringType, token.Quote(node.String))
	case ir.NumberType:
		lit, err := numberLiteral(node)
		if err != nil {
			return err
		}
		return encodeLeaf(w, es, ir.NumberType, lit)
	case ir.BoolType:
		return encodeLeaf(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return encodeLeaf(w, es, ir.NullType, "null")
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func encodeLeaf(w io.Writer, es *EncState, t ir.Type, v string) error {
	es.col += len(v)
	return writeString(w, applyColor(es, t, ValueColor, v))
}

// numberLiteral gives the text of a number node: the exact literal when
// known, otherwise the integer or float value.
func numberLiteral(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		if !token.ValidNumber(node.Number) {
			return "", fmt.Errorf("%w: invalid number literal %q", ErrEncoding, node.Number)
		}
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v is not representable", ErrEncoding, f)
		}
		return ir.FormatFloat(f), nil
	default:
		return "", fmt.Errorf("%w: number without value", ErrEncoding)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: %d fields for %d values", ErrEncoding, len(node.Fields), len(node.Values))
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if field.Type != ir.StringType {
			return fmt.Errorf("%w: %s key", ErrEncoding, field.Type)
		}
		key := token.Quote(field.String)
		es.col += len(key)
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, key)); err != nil {
			return err
		}
		colon := ":"
		if !es.wire {
			colon = ": "
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}
