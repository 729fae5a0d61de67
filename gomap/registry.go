package gomap

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/ir"
)

// DefaultMaxDepth bounds the nesting of a conversion.
const DefaultMaxDepth = 1000

type binding struct {
	pred   Predicate
	mapper Mapper
}

// Registry dispatches conversions to mappers.  A registry is configured
// with Bind and SetDefault and may then be shared; configuration is not
// synchronized.
type Registry struct {
	bindings []binding
	def      Mapper
	frozen   bool
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Bind appends a binding.  Bindings are consulted in the order they are
// bound.
func (r *Registry) Bind(p Predicate, m Mapper) *Registry {
	r.mutable()
	r.bindings = append(r.bindings, binding{pred: p, mapper: m})
	return r
}

// SetDefault sets the mapper used when no binding matches.
func (r *Registry) SetDefault(m Mapper) *Registry {
	r.mutable()
	r.def = m
	return r
}

// Freeze makes any further configuration of r panic.
func (r *Registry) Freeze() *Registry {
	r.frozen = true
	return r
}

func (r *Registry) mutable() {
	if r.frozen {
		panic("gomap: registry is frozen")
	}
}

// MapperFor returns the mapper of the first binding whose predicate
// matches t, or the default mapper.
func (r *Registry) MapperFor(t reflect.Type) (Mapper, error) {
	for i := range r.bindings {
		b := &r.bindings[i]
		if b.pred(t) {
			if debug.Registry() {
				debug.Logf("registry: %s -> binding %d (%T)\n", t, i, b.mapper)
			}
			return b.mapper, nil
		}
	}
	if r.def != nil {
		if debug.Registry() {
			debug.Logf("registry: %s -> default (%T)\n", t, r.def)
		}
		return r.def, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMapperFound, t)
}

// Serialize converts v, dispatching on its dynamic type.  A nil v gives
// null.
func (r *Registry) Serialize(v any) (*ir.Node, error) {
	return r.call(DefaultMaxDepth).Serialize(reflect.ValueOf(v))
}

// Deserialize converts node to a value of type t.
func (r *Registry) Deserialize(node *ir.Node, t reflect.Type) (reflect.Value, error) {
	return r.call(DefaultMaxDepth).Deserialize(node, t)
}

func (r *Registry) call(maxDepth int) *call {
	return &call{reg: r, maxDepth: maxDepth}
}

// call is the Delegate of one top level conversion.
type call struct {
	reg      *Registry
	depth    int
	maxDepth int
}

func (c *call) enter() error {
	c.depth++
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		return fmt.Errorf("%w: %d", ErrDepthExceeded, c.maxDepth)
	}
	return nil
}

func (c *call) Serialize(v reflect.Value) (*ir.Node, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ir.Null(), nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return ir.Null(), nil
	}
	if err := c.enter(); err != nil {
		return nil, err
	}
	defer func() { c.depth-- }()
	m, err := c.reg.MapperFor(v.Type())
	if err != nil {
		return nil, err
	}
	return m.ToIR(c, v)
}

func (c *call) Deserialize(node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if node == nil {
		node = ir.Null()
	}
	if err := c.enter(); err != nil {
		return reflect.Value{}, err
	}
	defer func() { c.depth-- }()
	m, err := c.reg.MapperFor(t)
	if err != nil {
		return reflect.Value{}, err
	}
	res, err := m.FromIR(c, node, t)
	if err != nil {
		return reflect.Value{}, err
	}
	if res.Type() != t {
		if !res.Type().ConvertibleTo(t) {
			return reflect.Value{}, &TypeError{Expected: t.String(), Actual: res.Type().String()}
		}
		res = res.Convert(t)
	}
	return res, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewDefaultRegistry().Freeze()
})

// DefaultRegistry returns the shared, frozen default registry.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// NewDefaultRegistry returns a new, unfrozen registry with the default
// bindings.
func NewDefaultRegistry() *Registry {
	return NewRegistry().BindDefaults()
}

// BindDefaults appends the default bindings to r and sets the reflective
// object mapper as default.  Bindings made before take precedence.
func (r *Registry) BindDefaults() *Registry {
	return r.
		Bind(IsPrimitive, PrimitiveMapper{}).
		Bind(IsArray, ArrayMapper{}).
		Bind(IsSelfDescribing, SelfDescribingMapper{}).
		Bind(IsNode, IdentityMapper{}).
		Bind(IsText, TextMapper{}).
		Bind(IsPointer, PointerMapper{}).
		SetDefault(ObjectMapper{})
}
