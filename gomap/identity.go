package gomap

import (
	"reflect"

	"github.com/signadot/jabert/ir"
)

// IsNode matches *ir.Node and ir.Node.
func IsNode(t reflect.Type) bool {
	return t == nodePtrType || t == nodeType
}

// IdentityMapper maps nodes to themselves.
type IdentityMapper struct{}

func (IdentityMapper) ToIR(_ Delegate, v reflect.Value) (*ir.Node, error) {
	if v.Type() == nodeType {
		node := v.Interface().(ir.Node)
		return &node, nil
	}
	node := v.Interface().(*ir.Node)
	if node == nil {
		return ir.Null(), nil
	}
	return node, nil
}

func (IdentityMapper) FromIR(_ Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if t == nodeType {
		return reflect.ValueOf(*node), nil
	}
	return reflect.ValueOf(node), nil
}
