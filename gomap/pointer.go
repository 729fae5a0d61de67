package gomap

import (
	"reflect"

	"github.com/signadot/jabert/ir"
)

func IsPointer(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer
}

// PointerMapper maps nil to null and other pointers to what they point
// to.
type PointerMapper struct{}

func (PointerMapper) ToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	if v.IsNil() {
		return ir.Null(), nil
	}
	return d.Serialize(v.Elem())
}

func (PointerMapper) FromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if node.Type == ir.NullType {
		return reflect.Zero(t), nil
	}
	return deref(d, node, t)
}

// deref deserializes node into a new value of type t.Elem() and returns a
// pointer to it.
func deref(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	elt, err := d.Deserialize(node, t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	p := reflect.New(t.Elem())
	p.Elem().Set(elt)
	return p, nil
}
