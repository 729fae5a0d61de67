package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// FromAny converts the generic Go representation of a document, as produced
// by json, yaml or expression evaluation, into a node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint(uint64(x)), nil
	case uint8:
		return FromUint(uint64(x)), nil
	case uint16:
		return FromUint(uint64(x)), nil
	case uint32:
		return FromUint(uint64(x)), nil
	case uint64:
		return FromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := FromSlice(nil)
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	}
	return fromAnyReflect(reflect.ValueOf(v))
}

func fromAnyReflect(val reflect.Value) (*Node, error) {
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return Null(), nil
		}
		return FromAny(val.Elem().Interface())
	case reflect.Slice, reflect.Array:
		res := FromSlice(nil)
		for i := 0; i < val.Len(); i++ {
			n, err := FromAny(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case reflect.Map:
		m := make(map[string]*Node, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			k, err := anyKey(iter.Key())
			if err != nil {
				return nil, err
			}
			n, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case reflect.String:
		return FromString(val.String()), nil
	case reflect.Bool:
		return FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FromUint(val.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(val.Float()), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, val.Type())
}

func anyKey(k reflect.Value) (string, error) {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), nil
	}
	return "", fmt.Errorf("%w: map key type %s", ErrUnsupported, k.Type())
}

// ToAny converts node to its generic Go representation: nil, bool, int,
// float64, json.Number, string, []any and map[string]any.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
