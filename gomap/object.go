package gomap

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/signadot/jabert/debug"
	"github.com/signadot/jabert/ir"
)

// ObjectMapper is the reflective mapper.  It maps structs to objects
// using their field descriptors, string keyed maps to objects, sets
// (maps with struct{} elements) to sorted lists and the remaining kinds
// like the other mappers do.
type ObjectMapper struct{}

func (ObjectMapper) ToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	switch v.Kind() {
	case reflect.Struct:
		return structToIR(d, v)
	case reflect.Map:
		if isSet(v.Type()) {
			return setToIR(d, v)
		}
		return mapToIR(d, v)
	case reflect.Slice, reflect.Array:
		return listToIR(d, v)
	case reflect.Pointer:
		return PointerMapper{}.ToIR(d, v)
	}
	if isPrimitiveKind(v.Kind()) {
		return primitiveToIR(v)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMapperFound, v.Type())
}

func (ObjectMapper) FromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Struct:
		return structFromIR(d, node, t)
	case reflect.Map:
		if isSet(t) {
			return setFromIR(d, node, t)
		}
		return mapFromIR(d, node, t)
	case reflect.Slice, reflect.Array:
		return listFromIR(d, node, t)
	case reflect.Pointer:
		return PointerMapper{}.FromIR(d, node, t)
	case reflect.Interface:
		return interfaceFromIR(node, t)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrInstantiation, t)
	}
	if isPrimitiveKind(t.Kind()) {
		return primitiveFromIR(node, t)
	}
	return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoMapperFound, t)
}

// interfaceFromIR gives the generic representation of node, see
// [ir.ToAny].  Only the empty interface can hold it.
func interfaceFromIR(node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if t.NumMethod() != 0 {
		return reflect.Value{}, fmt.Errorf("%w: interface %s", ErrInstantiation, t)
	}
	res := reflect.New(t).Elem()
	if a := ir.ToAny(node); a != nil {
		res.Set(reflect.ValueOf(a))
	}
	return res, nil
}

func checkKey(t reflect.Type) error {
	if t.Key().Kind() != reflect.String {
		return fmt.Errorf("%w: %s", ErrUnsupportedKeyType, t.Key())
	}
	return nil
}

func mapToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	if err := checkKey(v.Type()); err != nil {
		return nil, err
	}
	m := make(map[string]*ir.Node, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		node, err := d.Serialize(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		m[k] = node
	}
	return ir.FromMap(m), nil
}

func mapFromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if err := checkKey(t); err != nil {
		return reflect.Value{}, err
	}
	if node.Type != ir.ObjectType {
		return reflect.Value{}, mismatch("Object", node.Type)
	}
	res := reflect.MakeMapWithSize(t, len(node.Fields))
	for i, field := range node.Fields {
		k := reflect.New(t.Key()).Elem()
		k.SetString(field.String)
		v, err := d.Deserialize(node.Values[i], t.Elem())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %q: %w", field.String, err)
		}
		res.SetMapIndex(k, v)
	}
	return res, nil
}

// setToIR gives the members of a set as a list ordered by [ir.Compare].
func setToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	members := make([]*ir.Node, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		node, err := d.Serialize(iter.Key())
		if err != nil {
			return nil, err
		}
		members = append(members, node)
	}
	slices.SortFunc(members, ir.Compare)
	return ir.FromSlice(members), nil
}

func setFromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if node.Type != ir.ArrayType {
		return reflect.Value{}, mismatch("Array", node.Type)
	}
	res := reflect.MakeMapWithSize(t, len(node.Values))
	present := reflect.New(t.Elem()).Elem()
	for i, elt := range node.Values {
		k, err := d.Deserialize(elt, t.Key())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		if !k.Comparable() {
			return reflect.Value{}, &TypeError{Message: fmt.Sprintf("element %d is not comparable", i)}
		}
		res.SetMapIndex(k, present)
	}
	return res, nil
}

func structToIR(d Delegate, v reflect.Value) (*ir.Node, error) {
	t := v.Type()
	info, err := GetStructInfo(t)
	if err != nil {
		return nil, err
	}
	var self uintptr
	if v.CanAddr() {
		self = v.Addr().Pointer()
	}
	obj := &ir.Node{Type: ir.ObjectType}
	for _, f := range info.Fields {
		node, err := fieldToIR(d, f, v.Field(f.Index), self, t)
		if err != nil {
			return nil, fieldError("serialize", t, f.Name, err)
		}
		if node != nil {
			obj.Set(f.Name, node)
		}
	}
	if debug.Map() {
		debug.Logf("map: %s -> %d of %d fields\n", t, obj.Len(), len(info.Fields))
	}
	return obj, nil
}

// fieldToIR serializes one field of a struct of type t at address self.
// It returns nil for an absent optional field which is to be omitted.
func fieldToIR(d Delegate, f *FieldInfo, fv reflect.Value, self uintptr, t reflect.Type) (*ir.Node, error) {
	if self != 0 && refersTo(fv, self, reflect.PointerTo(t)) {
		return nil, fmt.Errorf("%w: %s refers to its containing %s", ErrCyclicReference, f.GoName, t)
	}
	switch f.Kind {
	case OptionalField:
		if fv.IsNil() {
			if f.Null {
				return ir.Null(), nil
			}
			return nil, nil
		}
		return d.Serialize(fv.Elem())
	case MapField:
		return mapToIR(d, fv)
	case SetField:
		return setToIR(d, fv)
	case CollectionField:
		return listToIR(d, fv)
	default:
		return d.Serialize(fv)
	}
}

// refersTo reports whether fv is a pointer of type pt to self, possibly
// held in an interface.
func refersTo(fv reflect.Value, self uintptr, pt reflect.Type) bool {
	for fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return false
		}
		fv = fv.Elem()
	}
	return fv.Kind() == reflect.Pointer && fv.Type() == pt && !fv.IsNil() && fv.Pointer() == self
}

func structFromIR(d Delegate, node *ir.Node, t reflect.Type) (reflect.Value, error) {
	if node.Type == ir.NullType {
		return reflect.Zero(t), nil
	}
	if node.Type != ir.ObjectType {
		return reflect.Value{}, mismatch("Object", node.Type)
	}
	info, err := GetStructInfo(t)
	if err != nil {
		return reflect.Value{}, err
	}
	res := reflect.New(t).Elem()
	vals := ir.ToMap(node)
	for _, f := range info.Fields {
		child, ok := vals[f.Name]
		fv, err := fieldFromIR(d, f, child, ok)
		if err != nil {
			return reflect.Value{}, fieldError("deserialize", t, f.Name, err)
		}
		if !fv.IsValid() {
			continue
		}
		dst := res.Field(f.Index)
		if !dst.CanSet() {
			return reflect.Value{}, fieldError("deserialize", t, f.Name, ErrFieldAccess)
		}
		dst.Set(fv)
	}
	return res, nil
}

// fieldFromIR deserializes the value of one field.  An invalid result
// leaves the field at its zero value.
func fieldFromIR(d Delegate, f *FieldInfo, child *ir.Node, ok bool) (reflect.Value, error) {
	if f.Kind == OptionalField {
		if !ok || child.Type == ir.NullType {
			return reflect.Value{}, nil
		}
		return deref(d, child, f.Type)
	}
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrMissingField, f.Name)
	}
	switch f.Kind {
	case MapField:
		return mapFromIR(d, child, f.Type)
	case SetField:
		return setFromIR(d, child, f.Type)
	case CollectionField:
		return listFromIR(d, child, f.Type)
	default:
		return d.Deserialize(child, f.Type)
	}
}
