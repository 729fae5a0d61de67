package gomap

import (
	"encoding"
	"reflect"

	"github.com/signadot/jabert/ir"
)

var (
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// IsText matches types implementing encoding.TextMarshaler whose pointer
// implements encoding.TextUnmarshaler.
func IsText(t reflect.Type) bool {
	return implements(t, textMarshalerType) && reflect.PointerTo(t).Implements(textUnmarshalerType)
}

// TextMapper maps text marshalers to strings.
type TextMapper struct{}

func (TextMapper) ToIR(_ Delegate, v reflect.Value) (*ir.Node, error) {
	m, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		m = addressable(v).Interface().(encoding.TextMarshaler)
	}
	d, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return ir.FromString(string(d)), nil
}

func (TextMapper) FromIR(_ Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if node.Type != ir.StringType {
		return reflect.Value{}, mismatch("String", node.Type)
	}
	p := reflect.New(t)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(node.String)); err != nil {
		return reflect.Value{}, err
	}
	return p.Elem(), nil
}
