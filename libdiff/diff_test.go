package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
)

type change struct {
	Op   string
	Path string
	From string
	To   string
}

func summarize(changes []Change) []change {
	var res []change
	for _, c := range changes {
		s := change{Op: c.Op.String(), Path: c.Path}
		if c.From != nil {
			s.From = lit(c.From)
		}
		if c.To != nil {
			s.To = lit(c.To)
		}
		res = append(res, s)
	}
	return res
}

func lit(node *ir.Node) string {
	switch node.Type {
	case ir.NumberType:
		return node.Literal()
	case ir.StringType:
		return node.String
	}
	return node.Type.String()
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []change
	}{
		{name: "equal", from: `{"a":[1,"x",null]}`, to: `{"a":[1,"x",null]}`},
		{name: "numbers by value", from: `[1,2.50]`, to: `[1.0,2.5]`},
		{
			name: "object",
			from: `{"a":1,"b":2}`,
			to:   `{"b":3,"c":4}`,
			want: []change{
				{Op: "remove", Path: "/a", From: "1"},
				{Op: "replace", Path: "/b", From: "2", To: "3"},
				{Op: "add", Path: "/c", To: "4"},
			},
		},
		{
			name: "type change",
			from: `{"a":[1]}`,
			to:   `{"a":{"x":1}}`,
			want: []change{{Op: "replace", Path: "/a", From: "Array", To: "Object"}},
		},
		{
			name: "array remove",
			from: `[1,2,3]`,
			to:   `[1,3]`,
			want: []change{{Op: "remove", Path: "/1", From: "2"}},
		},
		{
			name: "array add",
			from: `[1,2]`,
			to:   `[1,2,5]`,
			want: []change{{Op: "add", Path: "/2", To: "5"}},
		},
		{
			name: "array replace",
			from: `[1,2,3]`,
			to:   `[1,4,3]`,
			want: []change{{Op: "replace", Path: "/1", From: "2", To: "4"}},
		},
		{
			name: "array shrink",
			from: `[1,2,3]`,
			to:   `[4,5]`,
			want: []change{
				{Op: "replace", Path: "/0", From: "1", To: "4"},
				{Op: "replace", Path: "/1", From: "2", To: "5"},
				{Op: "remove", Path: "/2", From: "3"},
			},
		},
		{
			name: "nested",
			from: `[{"a":1},{"b":2}]`,
			to:   `[{"a":2},{"b":2}]`,
			want: []change{{Op: "replace", Path: "/0/a", From: "1", To: "2"}},
		},
		{
			name: "escaped key",
			from: `{"a/b":{"~":true}}`,
			to:   `{"a/b":{"~":false}}`,
			want: []change{{Op: "replace", Path: "/a~1b/~0", From: "Bool", To: "Bool"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Diff(parse.MustParse(tt.from), parse.MustParse(tt.to)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(%s, %s) (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}

func TestToPatch(t *testing.T) {
	changes := Diff(parse.MustParse(`{"a":1,"b":[1]}`), parse.MustParse(`{"b":[1,2]}`))
	got := ToPatch(changes)
	want := parse.MustParse(`[{"op":"remove","path":"/a"},{"op":"add","path":"/b/1","value":2}]`)
	if !ir.Equal(want, got) {
		t.Errorf("got %v", ir.ToAny(got))
	}
	if diff := cmp.Diff([]string{"/a", "/b/1"}, Paths(changes)); diff != "" {
		t.Error(diff)
	}
}

func TestStringDiff(t *testing.T) {
	if got := StringDiff("same", "same"); got != "" {
		t.Errorf("got %q for equal strings", got)
	}
	if got := PrettyStringDiff("same", "same"); got != "" {
		t.Errorf("got %q for equal strings", got)
	}
	tests := []struct {
		from, to, want string
	}{
		{"abc", "abd", "ab[-c-]{+d+}"},
		{"abc", "abcd", "abc{+d+}"},
		{"abcd", "abc", "abc[-d-]"},
	}
	for _, tt := range tests {
		if got := StringDiff(tt.from, tt.to); got != tt.want {
			t.Errorf("StringDiff(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
