package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

const tagName = "jabert"

// ParseStructTag parses a struct tag value into key-value pairs.
// Handles comma-separated values: `jabert:"field=name,null"`.
// Flags without a value map to "".  Values may be single or double
// quoted: `jabert:"field='with space'"`.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}
	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false
	for i := 0; i < len(tag); i++ {
		char := tag[i]
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case char == ',' && !inSingleQuote && !inDoubleQuote:
			if part := strings.TrimSpace(current.String()); part != "" {
				parts = append(parts, part)
			}
			current.Reset()
		default:
			current.WriteByte(char)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("invalid tag: unterminated quote in %q", tag)
	}
	if part := strings.TrimSpace(current.String()); part != "" {
		parts = append(parts, part)
	}
	for _, part := range parts {
		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(strings.TrimSpace(part[idx+1:]))
			continue
		}
		result[part] = ""
	}
	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		switch {
		case value[0] == '\'' && value[len(value)-1] == '\'',
			value[0] == '"' && value[len(value)-1] == '"':
			return value[1 : len(value)-1]
		}
	}
	return value
}

type FieldKind int

const (
	PlainField FieldKind = iota
	OptionalField
	MapField
	SetField
	CollectionField
)

func (k FieldKind) String() string {
	switch k {
	case OptionalField:
		return "optional"
	case MapField:
		return "map"
	case SetField:
		return "set"
	case CollectionField:
		return "collection"
	default:
		return "plain"
	}
}

// FieldInfo describes how one struct field is mapped.
type FieldInfo struct {
	// Name is the object key.
	Name string
	// GoName is the name of the struct field.
	GoName string
	Index  int
	Type   reflect.Type
	Kind   FieldKind
	// Null makes an absent optional field map to null instead of being
	// omitted.
	Null bool
}

// StructInfo holds the field descriptors of a struct type in declaration
// order.
type StructInfo struct {
	Type   reflect.Type
	Fields []*FieldInfo
}

var structInfos sync.Map // reflect.Type -> *StructInfo

// GetStructInfo returns the field descriptors of the struct type t,
// computing them on first use.
func GetStructInfo(t reflect.Type) (*StructInfo, error) {
	if v, ok := structInfos.Load(t); ok {
		return v.(*StructInfo), nil
	}
	info, err := buildStructInfo(t)
	if err != nil {
		return nil, err
	}
	v, _ := structInfos.LoadOrStore(t, info)
	return v.(*StructInfo), nil
}

func buildStructInfo(t reflect.Type) (*StructInfo, error) {
	if t.Kind() != reflect.Struct {
		return nil, &TypeError{Expected: "struct", Actual: t.String()}
	}
	info := &StructInfo{Type: t}
	seen := map[string]string{}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		opts, err := ParseStructTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t, f.Name, err)
		}
		if _, ok := opts["omit"]; ok {
			continue
		}
		fi := &FieldInfo{
			Name:   f.Name,
			GoName: f.Name,
			Index:  i,
			Type:   f.Type,
			Kind:   kindOf(f.Type),
		}
		if name, ok := opts["field"]; ok && name != "" {
			fi.Name = name
		}
		if _, ok := opts["null"]; ok {
			fi.Null = true
		}
		if prev, ok := seen[fi.Name]; ok {
			return nil, fmt.Errorf("%s: fields %s and %s both map to %q", t, prev, f.Name, fi.Name)
		}
		seen[fi.Name] = f.Name
		info.Fields = append(info.Fields, fi)
	}
	return info, nil
}

// kindOf categorizes a field type.  Types with their own marshaling
// methods are plain, whatever their kind.
func kindOf(t reflect.Type) FieldKind {
	if t.Kind() != reflect.Pointer && (implements(t, marshalerType) || implements(t, textMarshalerType)) {
		return PlainField
	}
	switch t.Kind() {
	case reflect.Pointer:
		return OptionalField
	case reflect.Map:
		if isSet(t) {
			return SetField
		}
		return MapField
	case reflect.Slice:
		return CollectionField
	}
	return PlainField
}

// isSet reports whether t is a map with an empty struct element type.
func isSet(t reflect.Type) bool {
	if t.Kind() != reflect.Map {
		return false
	}
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}
