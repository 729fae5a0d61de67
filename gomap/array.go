package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/jabert/ir"
)

// IsArray matches unnamed slice and array types.
func IsArray(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Name() == ""
	}
	return false
}

type ArrayMapper struct{}

func (ArrayMapper) ToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	return listToIR(d, v)
}

func (ArrayMapper) FromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	return listFromIR(d, node, t)
}

// listToIR serializes the elements of a slice or array in order.  A nil
// slice gives an empty list.
func listToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	n := v.Len()
	res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, 0, n)}
	for i := range n {
		elt, err := d.Serialize(v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res.Append(elt)
	}
	return res, nil
}

func listFromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if node.Type != ir.ArrayType {
		return reflect.Value{}, mismatch("Array", node.Type)
	}
	n := len(node.Values)
	var res reflect.Value
	switch t.Kind() {
	case reflect.Slice:
		res = reflect.MakeSlice(t, n, n)
	case reflect.Array:
		if t.Len() != n {
			return reflect.Value{}, &TypeError{
				Message: fmt.Sprintf("array of length %d for %s", n, t),
			}
		}
		res = reflect.New(t).Elem()
	default:
		return reflect.Value{}, &TypeError{Expected: "slice or array", Actual: t.String()}
	}
	et := t.Elem()
	for i, elt := range node.Values {
		v, err := d.Deserialize(elt, et)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		res.Index(i).Set(v)
	}
	return res, nil
}
