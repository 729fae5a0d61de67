package gomap

import (
	"reflect"
	"testing"

	"github.com/signadot/jabert/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constMapper(s string) Mapper {
	return Funcs{
		To: func(Delegate, reflect.Value) (*ir.Node, error) {
			return ir.FromString(s), nil
		},
		From: func(_ Delegate, _ *ir.Node, t reflect.Type) (reflect.Value, error) {
			return reflect.Zero(t), nil
		},
	}
}

func TestRegistryFirstMatchWins(t *testing.T) {
	always := func(reflect.Type) bool { return true }
	r := NewRegistry().
		Bind(always, constMapper("first")).
		Bind(always, constMapper("second"))
	node, err := r.Serialize(1)
	require.NoError(t, err)
	assert.Equal(t, "first", node.String)
}

func TestRegistryDefault(t *testing.T) {
	never := func(reflect.Type) bool { return false }
	r := NewRegistry().Bind(never, constMapper("bound")).SetDefault(constMapper("default"))
	node, err := r.Serialize("x")
	require.NoError(t, err)
	assert.Equal(t, "default", node.String)
}

func TestRegistryNoMapper(t *testing.T) {
	r := NewRegistry().Bind(IsPrimitive, PrimitiveMapper{})
	_, err := r.Serialize(struct{}{})
	assert.ErrorIs(t, err, ErrNoMapperFound)
	_, err = r.Deserialize(ir.Null(), reflect.TypeOf([]int{}))
	assert.ErrorIs(t, err, ErrNoMapperFound)

	_, err = NewRegistry().MapperFor(reflect.TypeOf(0))
	assert.ErrorIs(t, err, ErrNoMapperFound)
}

func TestRegistryBindBeforeDefaults(t *testing.T) {
	isInt := func(t reflect.Type) bool { return t.Kind() == reflect.Int }
	r := NewRegistry().Bind(isInt, constMapper("int")).BindDefaults().Freeze()
	node, err := r.Serialize([]any{1, "s"})
	require.NoError(t, err)
	assert.True(t, ir.Equal(node, ir.FromSlice([]*ir.Node{ir.FromString("int"), ir.FromString("s")})))
}

func TestRegistryFreeze(t *testing.T) {
	r := NewDefaultRegistry().Freeze()
	assert.Panics(t, func() { r.Bind(IsPointer, PointerMapper{}) })
	assert.Panics(t, func() { DefaultRegistry().SetDefault(ObjectMapper{}) })
}

func TestRegistryNil(t *testing.T) {
	node, err := DefaultRegistry().Serialize(nil)
	require.NoError(t, err)
	assert.Equal(t, ir.NullType, node.Type)
}

func TestPredicates(t *testing.T) {
	type named int
	type namedSlice []int
	tests := []struct {
		name string
		pred Predicate
		v    any
		want bool
	}{
		{name: "int", pred: IsPrimitive, v: 0, want: true},
		{name: "string", pred: IsPrimitive, v: "", want: true},
		{name: "named int", pred: IsPrimitive, v: named(0), want: false},
		{name: "slice", pred: IsArray, v: []int{}, want: true},
		{name: "array", pred: IsArray, v: [2]int{}, want: true},
		{name: "named slice", pred: IsArray, v: namedSlice{}, want: false},
		{name: "node", pred: IsNode, v: ir.Null(), want: true},
		{name: "node value", pred: IsNode, v: ir.Node{}, want: true},
		{name: "self-describing", pred: IsSelfDescribing, v: point{}, want: true},
		{name: "not self-describing", pred: IsSelfDescribing, v: 0, want: false},
		{name: "text", pred: IsText, v: color(0), want: true},
		{name: "pointer", pred: IsPointer, v: new(int), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(reflect.TypeOf(tt.v)))
		})
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
