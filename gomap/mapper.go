package gomap

import (
	"reflect"

	"github.com/signadot/jabert/ir"
)

// Mapper converts values of the types it is bound to.  Nested values are
// converted through d, so that they are dispatched by the registry.
type Mapper interface {
	ToIR(d Delegate, v reflect.Value) (*ir.Node, error)
	FromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error)
}

// Delegate dispatches nested conversions.  It carries the state of one
// top level conversion.
type Delegate interface {
	Serialize(v reflect.Value) (*ir.Node, error)
	Deserialize(node *ir.Node, t reflect.Type) (reflect.Value, error)
}

// Predicate selects the types a mapper is bound to.
type Predicate func(t reflect.Type) bool

// Marshaler is implemented by types which describe their own IR form.
type Marshaler interface {
	MarshalIR() (*ir.Node, error)
}

// Unmarshaler is implemented by pointers to types which can restore
// themselves from their IR form.
type Unmarshaler interface {
	UnmarshalIR(*ir.Node) error
}

// Funcs adapts a pair of functions to a Mapper.
type Funcs struct {
	To   func(d Delegate, v reflect.Value) (*ir.Node, error)
	From func(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error)
}

func (f Funcs) ToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	return f.To(d, v)
}

func (f Funcs) FromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	return f.From(d, node, t)
}

var (
	nodeType        = reflect.TypeOf(ir.Node{})
	nodePtrType     = reflect.TypeOf((*ir.Node)(nil))
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)
