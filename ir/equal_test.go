package ir

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"int float", FromInt(1), FromFloat(1.0), true},
		{"literal int", FromNumber("1"), FromInt(1), true},
		{"literal float", FromNumber("1.0"), FromFloat(1), true},
		{"exponent", FromNumber("1e2"), FromInt(100), true},
		{"negative zero", FromFloat(0), FromNumber("-0.0"), true},
		{"different numbers", FromInt(1), FromFloat(1.1), false},
		{"big literal", FromNumber("123456789012345678901234567890"), FromNumber("123456789012345678901234567890"), true},
		{"string", FromString("a"), FromString("a"), true},
		{"string number", FromString("1"), FromInt(1), false},
		{"bool", FromBool(true), FromBool(false), false},
		{"empty list object", FromSlice(nil), FromKeyVals(nil), false},
		{"list order",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false},
		{"object order",
			FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}, {Key: "y", Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: "y", Val: Null()}, {Key: "x", Val: FromFloat(1)}}),
			true},
		{"object keys",
			FromKeyVals([]KeyVal{{Key: "x", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "y", Val: FromInt(1)}}),
			false},
		{"nested",
			FromMap(map[string]*Node{"a": FromSlice([]*Node{FromMap(map[string]*Node{})})}),
			FromMap(map[string]*Node{"a": FromSlice([]*Node{FromKeyVals(nil)})}),
			true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal(b, a) = %v, want %v", got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("Hash() differs for equal nodes")
			}
		})
	}
}

func TestSetReplaces(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromInt(3)},
	})
	if obj.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", obj.Len())
	}
	if got := Get(obj, "a"); !Equal(got, FromInt(3)) {
		t.Errorf("expected a=3, got %v", got.Literal())
	}
	if obj.Fields[0].String != "a" {
		t.Errorf("replacement moved key: %q", obj.Fields[0].String)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0:     "0.0",
		1:     "1.0",
		-1:    "-1.0",
		0.1:   "0.1",
		-1.1:  "-1.1",
		100:   "100.0",
		1e21:  "1e+21",
		1e-7:  "1e-07",
		12.25: "12.25",
	}
	for f, want := range tests {
		if got := FormatFloat(f); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", f, got, want)
		}
	}
}

func TestFromUint(t *testing.T) {
	small := FromUint(7)
	if small.Int64 == nil || *small.Int64 != 7 {
		t.Errorf("expected int64 7")
	}
	big := FromUint(1<<63 + 1)
	if big.Int64 != nil {
		t.Errorf("expected no int64 for %s", big.Number)
	}
	if big.Number != "9223372036854775809" {
		t.Errorf("got literal %q", big.Number)
	}
}
