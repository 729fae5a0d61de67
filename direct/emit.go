package direct

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/token"
)

var ErrEmit = errors.New("cannot emit")

// Emit writes node to w as compact JSON.
func Emit(node *ir.Node, w io.Writer) error {
	e := &emitter{w: bufio.NewWriter(w)}
	if err := e.emit(node); err != nil {
		return err
	}
	return e.w.Flush()
}

type emitter struct {
	w       *bufio.Writer
	scratch []byte
}

func (e *emitter) emit(node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEmit)
	}
	switch node.Type {
	case ir.NullType:
		e.w.WriteString("null")
	case ir.BoolType:
		e.w.WriteString(strconv.FormatBool(node.Bool))
	case ir.NumberType:
		lit, err := numberText(node)
		if err != nil {
			return err
		}
		e.w.WriteString(lit)
	case ir.StringType:
		e.quote(node.String)
	case ir.ArrayType:
		e.w.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				e.w.WriteByte(',')
			}
			if err := e.emit(v); err != nil {
				return err
			}
		}
		e.w.WriteByte(']')
	case ir.ObjectType:
		if len(node.Fields) != len(node.Values) {
			return fmt.Errorf("%w: %d fields for %d values", ErrEmit, len(node.Fields), len(node.Values))
		}
		e.w.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				e.w.WriteByte(',')
			}
			e.quote(f.String)
			e.w.WriteByte(':')
			if err := e.emit(node.Values[i]); err != nil {
				return err
			}
		}
		e.w.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEmit, node.Type)
	}
	return nil
}

func (e *emitter) quote(s string) {
	e.scratch = token.AppendQuote(e.scratch[:0], s)
	e.w.Write(e.scratch)
}

func numberText(node *ir.Node) (string, error) {
	if node.Number == "" && node.Int64 == nil && node.Float64 != nil {
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v is not representable", ErrEmit, f)
		}
	}
	lit := node.Literal()
	if lit == "" {
		return "", fmt.Errorf("%w: number without value", ErrEmit)
	}
	if node.Number != "" && !token.ValidNumber(lit) {
		return "", fmt.Errorf("%w: invalid number literal %q", ErrEmit, lit)
	}
	return lit, nil
}
