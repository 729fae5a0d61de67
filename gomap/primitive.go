package gomap

import (
	"math"
	"reflect"
	"strconv"

	"github.com/signadot/jabert/ir"
)

// IsPrimitive matches the predeclared boolean, numeric and string types.
// Named types with those kinds are left to later bindings.
func IsPrimitive(t reflect.Type) bool {
	return t.PkgPath() == "" && t.Name() != "" && isPrimitiveKind(t.Kind())
}

func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

type PrimitiveMapper struct{}

func (PrimitiveMapper) ToIR(_ Delegate, v reflect.Value) (*ir.Node, error) {
	return primitiveToIR(v)
}

func (PrimitiveMapper) FromIR(_ Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	return primitiveFromIR(node, t)
}

func primitiveToIR(v reflect.Value) (*ir.Node, error) {
	switch v.Kind() {
	case reflect.Bool:
		return ir.FromBool(v.Bool()), nil
	case reflect.String:
		return ir.FromString(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromUint(v.Uint()), nil
	case reflect.Float32:
		return float32ToIR(float32(v.Float())), nil
	case reflect.Float64:
		return ir.FromFloat(v.Float()), nil
	}
	return nil, &TypeError{Expected: "primitive", Actual: v.Type().String()}
}

// float32ToIR keeps the shortest decimal form of f, so that 0.1 is not
// widened to 0.10000000149011612.
func float32ToIR(f float32) *ir.Node {
	f64 := float64(f)
	if math.IsNaN(f64) || math.IsInf(f64, 0) {
		return ir.FromFloat(f64)
	}
	lit := strconv.FormatFloat(f64, 'g', -1, 32)
	if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
		lit += ".0"
	}
	return ir.FromNumber(lit)
}

func primitiveFromIR(node *ir.Node, t reflect.Type) (reflect.Value, error) {
	res := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		if node.Type != ir.BoolType {
			return res, mismatch("Bool", node.Type)
		}
		res.SetBool(node.Bool)
	case reflect.String:
		if node.Type != ir.StringType {
			return res, mismatch("String", node.Type)
		}
		res.SetString(node.String)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := intValue(node)
		if err != nil {
			return res, err
		}
		if res.OverflowInt(i) {
			return res, &TypeError{Message: node.Literal() + " overflows " + t.String()}
		}
		res.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := uintValue(node)
		if err != nil {
			return res, err
		}
		if res.OverflowUint(u) {
			return res, &TypeError{Message: node.Literal() + " overflows " + t.String()}
		}
		res.SetUint(u)
	case reflect.Float32, reflect.Float64:
		if node.Type != ir.NumberType {
			return res, mismatch("Number", node.Type)
		}
		f, ok := node.Float()
		if !ok {
			return res, &TypeError{Message: "number " + node.Literal() + " is not a float"}
		}
		res.SetFloat(f)
	default:
		return res, &TypeError{Expected: "primitive", Actual: t.String()}
	}
	return res, nil
}

func intValue(node *ir.Node) (int64, error) {
	if node.Type != ir.NumberType {
		return 0, mismatch("Number", node.Type)
	}
	if node.Int64 != nil {
		return *node.Int64, nil
	}
	if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
		return i, nil
	}
	f, ok := node.Float()
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &TypeError{Message: "number " + node.Literal() + " is not an int64"}
	}
	return int64(f), nil
}

func uintValue(node *ir.Node) (uint64, error) {
	if node.Type != ir.NumberType {
		return 0, mismatch("Number", node.Type)
	}
	if node.Int64 != nil {
		if *node.Int64 < 0 {
			return 0, &TypeError{Message: "negative number " + node.Literal() + " for unsigned"}
		}
		return uint64(*node.Int64), nil
	}
	if u, err := strconv.ParseUint(node.Number, 10, 64); err == nil {
		return u, nil
	}
	f, ok := node.Float()
	if !ok || f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, &TypeError{Message: "number " + node.Literal() + " is not a uint64"}
	}
	return uint64(f), nil
}
