package gomap

import (
	"reflect"

	"github.com/signadot/jabert/ir"
)

// IsSelfDescribing matches types implementing Marshaler, with a value or
// pointer receiver, whose pointer implements Unmarshaler.
func IsSelfDescribing(t reflect.Type) bool {
	return implements(t, marshalerType) && reflect.PointerTo(t).Implements(unmarshalerType)
}

func implements(t, iface reflect.Type) bool {
	return t.Implements(iface) || reflect.PointerTo(t).Implements(iface)
}

// addressable returns a pointer to the value of v, copying v when it is
// not addressable.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// SelfDescribingMapper delegates to the MarshalIR and UnmarshalIR methods
// of a type.
type SelfDescribingMapper struct{}

func (SelfDescribingMapper) ToIR(_ Delegate, v reflect.Value) (*ir.Node, error) {
	m, ok := v.Interface().(Marshaler)
	if !ok {
		m = addressable(v).Interface().(Marshaler)
	}
	node, err := m.MarshalIR()
	if err != nil {
		return nil, err
	}
	if node == nil {
		return ir.Null(), nil
	}
	return node, nil
}

func (SelfDescribingMapper) FromIR(_ Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	p := reflect.New(t)
	if err := p.Interface().(Unmarshaler).UnmarshalIR(node); err != nil {
		return reflect.Value{}, err
	}
	return p.Elem(), nil
}
