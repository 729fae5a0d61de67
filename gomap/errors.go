package gomap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrNoMapperFound      = errors.New("no mapper found")
	ErrCyclicReference    = errors.New("cyclic reference")
	ErrUnsupportedKeyType = errors.New("unsupported map key type")
	ErrMissingField       = errors.New("missing field")
	ErrInstantiation      = errors.New("cannot instantiate")
	ErrFieldAccess        = errors.New("cannot access field")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrDepthExceeded      = errors.New("maximum depth exceeded")
)

// TypeError represents a type mismatch error.  FieldPath is the dotted
// path of the struct fields through which it was raised, when any.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Message   string
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// FieldError wraps an error raised while mapping one field of a struct.
type FieldError struct {
	Op    string // "serialize" or "deserialize"
	Type  string
	Field string
	Err   error
}

// Error lists each distinct field of a directly nested chain of field
// errors once.  Frames repeated by a cycle are counted instead.
func (e *FieldError) Error() string {
	var b strings.Builder
	type frame struct{ op, typ, field string }
	seen := map[frame]bool{}
	repeated := 0
	var err error = e
	for {
		fe, ok := err.(*FieldError)
		if !ok {
			break
		}
		key := frame{fe.Op, fe.Type, fe.Field}
		if seen[key] {
			repeated++
		} else {
			seen[key] = true
			fmt.Fprintf(&b, "could not %s field %s of %s: ", fe.Op, fe.Field, fe.Type)
		}
		err = fe.Err
	}
	if repeated > 0 {
		fmt.Fprintf(&b, "(%d repeated fields) ", repeated)
	}
	fmt.Fprint(&b, err)
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldPath returns the dotted path of the fields through which err was
// raised, outermost first, or "" if err is not a [FieldError].
func FieldPath(err error) string {
	var parts []string
	var fe *FieldError
	for errors.As(err, &fe) {
		parts = append(parts, fe.Field)
		err = fe.Err
	}
	return strings.Join(parts, ".")
}

// fieldError wraps err as raised through field of t, extending the path
// of a type error it carries.
func fieldError(op string, t reflect.Type, field string, err error) error {
	var te *TypeError
	if errors.As(err, &te) {
		if te.FieldPath == "" {
			te.FieldPath = field
		} else {
			te.FieldPath = field + "." + te.FieldPath
		}
	}
	return &FieldError{Op: op, Type: t.String(), Field: field, Err: err}
}

func mismatch(expected string, actual fmt.Stringer) error {
	return &TypeError{Expected: expected, Actual: actual.String()}
}
