package ir

// Equal reports whether a and b are deeply equal.  Numbers compare equal
// when their literals are identical or their float projections are equal,
// so FromInt(1) equals FromFloat(1.0).  Object entries are compared by key,
// regardless of order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return numbersEqual(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		bMap := ToMap(b)
		if len(bMap) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv, ok := bMap[f.String]
			if !ok {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(a, b *Node) bool {
	if a.Number != "" && a.Number == b.Number {
		return true
	}
	if a.Int64 != nil && b.Int64 != nil && *a.Int64 == *b.Int64 {
		return true
	}
	fa, okA := a.Float()
	fb, okB := b.Float()
	if !okA || !okB {
		return false
	}
	return fa == fb
}
