package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/ir"
)

// ToIR converts v to a node.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	cfg := newMapConfig(opts)
	return cfg.registry.call(cfg.maxDepth).Serialize(reflect.ValueOf(v))
}

// FromIR stores the conversion of node in the value ptr points to.
func FromIR(node *ir.Node, ptr any, opts ...MapOption) error {
	pv := reflect.ValueOf(ptr)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return fmt.Errorf("%w: FromIR needs a non-nil pointer, got %T", ErrInstantiation, ptr)
	}
	cfg := newMapConfig(opts)
	res, err := cfg.registry.call(cfg.maxDepth).Deserialize(node, pv.Type().Elem())
	if err != nil {
		return err
	}
	pv.Elem().Set(res)
	return nil
}

// ToJSON converts v to JSON text.
func ToJSON(v any, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v, opts...)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(newMapConfig(opts).codec, node)
}

// FromJSON parses d and stores its conversion in the value ptr points
// to.
func FromJSON(d []byte, ptr any, opts ...MapOption) error {
	node, err := codec.Unmarshal(newMapConfig(opts).codec, d)
	if err != nil {
		return err
	}
	return FromIR(node, ptr, opts...)
}
