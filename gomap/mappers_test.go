package gomap

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jabert/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// point describes itself as a two element list.
type point struct {
	X, Y int
}

func (p point) MarshalIR() (*ir.Node, error) {
	return ir.FromSlice([]*ir.Node{ir.FromInt(int64(p.X)), ir.FromInt(int64(p.Y))}), nil
}

func (p *point) UnmarshalIR(node *ir.Node) error {
	if node.Type != ir.ArrayType || node.Len() != 2 {
		return fmt.Errorf("bad point %s", node.Type)
	}
	p.X = int(*node.Values[0].Int64)
	p.Y = int(*node.Values[1].Int64)
	return nil
}

type color int

func (c color) MarshalText() ([]byte, error) {
	return []byte([]string{"red", "green", "blue"}[c]), nil
}

func (c *color) UnmarshalText(d []byte) error {
	switch string(d) {
	case "red":
		*c = 0
	case "green":
		*c = 1
	case "blue":
		*c = 2
	default:
		return fmt.Errorf("bad color %q", d)
	}
	return nil
}

func TestPrimitiveRoundTrip(t *testing.T) {
	values := []any{
		true, false, "", "héllo\n",
		int(-3), int8(math.MinInt8), int16(math.MaxInt16), int32(-7), int64(math.MaxInt64),
		uint(3), uint8(255), uint16(1), uint32(math.MaxUint32), uint64(math.MaxUint64), uintptr(9),
		float32(0.1), float32(2), float64(1.5), math.MaxFloat64,
	}
	for _, v := range values {
		t.Run(fmt.Sprintf("%T(%v)", v, v), func(t *testing.T) {
			node, err := ToIR(v)
			require.NoError(t, err)
			back := reflect.New(reflect.TypeOf(v))
			require.NoError(t, FromIR(node, back.Interface()))
			assert.Equal(t, v, back.Elem().Interface())
		})
	}
}

func TestFloat32Literal(t *testing.T) {
	d, err := ToJSON(float32(0.1))
	require.NoError(t, err)
	assert.Equal(t, "0.1", string(d))
	d, err = ToJSON(float32(2))
	require.NoError(t, err)
	assert.Equal(t, "2.0", string(d))
}

func TestPrimitiveMismatch(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		ptr  any
	}{
		{name: "string for int", node: ir.FromString("1"), ptr: new(int)},
		{name: "number for string", node: ir.FromInt(1), ptr: new(string)},
		{name: "null for bool", node: ir.Null(), ptr: new(bool)},
		{name: "fraction for int", node: ir.FromFloat(1.5), ptr: new(int)},
		{name: "overflow int8", node: ir.FromInt(128), ptr: new(int8)},
		{name: "negative uint", node: ir.FromInt(-1), ptr: new(uint)},
		{name: "overflow uint8", node: ir.FromInt(256), ptr: new(uint8)},
		{name: "bool for float", node: ir.FromBool(true), ptr: new(float64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromIR(tt.node, tt.ptr)
			assert.ErrorIs(t, err, ErrTypeMismatch)
			var te *TypeError
			assert.True(t, errors.As(err, &te))
		})
	}
}

func TestIntegralFloats(t *testing.T) {
	var i int
	require.NoError(t, FromIR(ir.FromNumber("1.0"), &i))
	assert.Equal(t, 1, i)
	require.NoError(t, FromIR(ir.FromNumber("1e3"), &i))
	assert.Equal(t, 1000, i)
	var u uint64
	require.NoError(t, FromIR(ir.FromNumber("18446744073709551615"), &u))
	assert.Equal(t, uint64(math.MaxUint64), u)
	var f float64
	require.NoError(t, FromIR(ir.FromInt(3), &f))
	assert.Equal(t, 3.0, f)
}

func TestArrays(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}
	d, err := ToJSON(list)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5]", string(d))
	var back []int
	require.NoError(t, FromJSON(d, &back))
	assert.Equal(t, list, back)

	var nilSlice []string
	d, err = ToJSON(nilSlice)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(d))

	var arr [3]string
	require.NoError(t, FromJSON([]byte(`["a","b","c"]`), &arr))
	assert.Equal(t, [3]string{"a", "b", "c"}, arr)
	assert.ErrorIs(t, FromJSON([]byte(`["a"]`), &arr), ErrTypeMismatch)
	assert.ErrorIs(t, FromJSON([]byte(`{}`), &back), ErrTypeMismatch)

	var nested [][]bool
	require.NoError(t, FromJSON([]byte(`[[true],[],[false,true]]`), &nested))
	if diff := cmp.Diff([][]bool{{true}, {}, {false, true}}, nested); diff != "" {
		t.Errorf("nested (-want +got):\n%s", diff)
	}
}

func TestIdentity(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})
	got, err := ToIR(node)
	require.NoError(t, err)
	assert.Same(t, node, got)

	var nilNode *ir.Node
	got, err = ToIR(nilNode)
	require.NoError(t, err)
	assert.Equal(t, ir.NullType, got.Type)

	var back *ir.Node
	require.NoError(t, FromIR(node, &back))
	assert.Same(t, node, back)

	var val ir.Node
	require.NoError(t, FromIR(node, &val))
	assert.True(t, ir.Equal(node, &val))
}

func TestSelfDescribing(t *testing.T) {
	d, err := ToJSON(point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(d))
	var p point
	require.NoError(t, FromJSON(d, &p))
	assert.Equal(t, point{X: 1, Y: 2}, p)

	var pp *point
	require.NoError(t, FromJSON([]byte("[3,4]"), &pp))
	require.NotNil(t, pp)
	assert.Equal(t, point{X: 3, Y: 4}, *pp)

	assert.Error(t, FromJSON([]byte("[3]"), &p))
}

func TestText(t *testing.T) {
	d, err := ToJSON([]color{2, 0})
	require.NoError(t, err)
	assert.Equal(t, `["blue","red"]`, string(d))
	var cs []color
	require.NoError(t, FromJSON([]byte(`["green"]`), &cs))
	assert.Equal(t, []color{1}, cs)
	assert.ErrorIs(t, FromJSON([]byte(`[1]`), &cs), ErrTypeMismatch)
}

func TestPointers(t *testing.T) {
	n := 5
	d, err := ToJSON(&n)
	require.NoError(t, err)
	assert.Equal(t, "5", string(d))
	var p *int
	require.NoError(t, FromJSON([]byte("7"), &p))
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
	require.NoError(t, FromJSON([]byte("null"), &p))
	assert.Nil(t, p)
}

func TestInterfaces(t *testing.T) {
	var v any
	require.NoError(t, FromJSON([]byte(`{"a":[1,"x",null,true]}`), &v))
	assert.Equal(t, map[string]any{"a": []any{1, "x", nil, true}}, v)

	var s fmt.Stringer
	err := FromJSON([]byte(`"x"`), &s)
	assert.ErrorIs(t, err, ErrInstantiation)

	var f func()
	assert.ErrorIs(t, FromJSON([]byte(`null`), &f), ErrInstantiation)
	var ch chan int
	assert.ErrorIs(t, FromJSON([]byte(`null`), &ch), ErrInstantiation)

	_, err = ToIR(func() {})
	assert.ErrorIs(t, err, ErrNoMapperFound)

	assert.ErrorIs(t, FromIR(ir.Null(), v), ErrInstantiation)
}

func TestMaxDepth(t *testing.T) {
	deep := []any{}
	for range 10 {
		deep = []any{deep}
	}
	_, err := ToIR(deep, MaxDepth(5))
	assert.ErrorIs(t, err, ErrDepthExceeded)
	_, err = ToIR(deep, MaxDepth(20))
	assert.NoError(t, err)

	var back [][][][][][][][][][]int
	doc := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	assert.ErrorIs(t, FromJSON([]byte(doc), &back, MaxDepth(5)), ErrDepthExceeded)
	assert.NoError(t, FromJSON([]byte(doc), &back))
}

func TestRuneIsNumber(t *testing.T) {
	d, err := ToJSON('a')
	require.NoError(t, err)
	assert.Equal(t, "97", string(d))
	var r rune
	require.NoError(t, FromJSON(d, &r))
	assert.Equal(t, 'a', r)
	assert.ErrorIs(t, FromJSON([]byte(`"a"`), &r), ErrTypeMismatch)
}
