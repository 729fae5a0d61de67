package eval

import (
	"testing"

	"github.com/signadot/jabert/encode"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"name":"jb","items":[{"n":1,"ok":true},{"n":2,"ok":false},{"n":3,"ok":true}],"ratio":0.5}`

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "field", src: `doc.name`, want: `"jb"`},
		{name: "arith", src: `doc.ratio * 4`, want: `2.0`},
		{name: "getpath", src: `getpath("$.items[1].n") + 1`, want: `3`},
		{name: "getpath object", src: `getpath("items[0]")`, want: `{"n":1,"ok":true}`},
		{name: "map", src: `map(doc.items, .n)`, want: `[1,2,3]`},
		{name: "filter", src: `len(filter(doc.items, .ok))`, want: `2`},
		{name: "typeof", src: `typeof(doc.items)`, want: `"Array"`},
		{name: "typeof null", src: `typeof(nil)`, want: `"Null"`},
		{name: "env", src: `greeting + " " + doc.name`, want: `"hi jb"`},
		{name: "whereami", src: `whereami()`, want: `"$"`},
	}
	root := parse.MustParse(doc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.src, root, Env{"greeting": "hi"})
			require.NoError(t, err)
			want := parse.MustParse(tt.want)
			if !ir.Equal(want, got) {
				t.Errorf("Eval(%q) = %s, want %s", tt.src, encode.MustString(got), tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	root := parse.MustParse(doc)
	for _, src := range []string{`doc.`, `getpath("$.nope")`, `1 +`} {
		_, err := Eval(src, root, nil)
		assert.ErrorIs(t, err, ErrEval, src)
	}
}

func TestFilter(t *testing.T) {
	root := parse.MustParse(doc)
	got, err := Filter(`it.n > 1`, ir.Get(root, "items"), nil)
	require.NoError(t, err)
	want := parse.MustParse(`[{"n":2,"ok":false},{"n":3,"ok":true}]`)
	assert.True(t, ir.Equal(want, got), encode.MustString(got))

	_, err = Filter(`true`, root, nil)
	assert.ErrorIs(t, err, ErrEval)
}

func TestExpandIR(t *testing.T) {
	root := parse.MustParse(`{"a":2,"b":".[doc.a * 2]","c":["x $[doc.a] y","path .[whereami()]"],"d":".[doc.l]","l":[1,"q"]}`)
	got, err := ExpandIR(root, nil)
	require.NoError(t, err)
	want := parse.MustParse(`{"a":2,"b":4,"c":["x 2 y","path $.c[1]"],"d":[1,"q"],"l":[1,"q"]}`)
	assert.True(t, ir.Equal(want, got), encode.MustString(got))
	assert.Equal(t, ".[doc.a * 2]", ir.Get(root, "b").String)
}

func TestExpandString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "ab", want: "ab"},
		{in: "$[1 + 1]", want: "2"},
		{in: "a.b $[x]", want: "a.b 1.5"},
		{in: "$[`a\\]b`]", want: "a]b"},
		{in: "list: $[[1, 2\\]]", want: "list: [1,2]"},
		{in: "open $[x", want: "open $[x"},
		{in: "plain [x]", want: "plain [x]"},
	}
	for _, tt := range tests {
		got, err := ExpandString(tt.in, Env{"x": 1.5})
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestGetRaw(t *testing.T) {
	assert.Equal(t, "a", GetRaw(".[ a ]"))
	assert.Equal(t, "", GetRaw("$[a]"))
	assert.Equal(t, "", GetRaw(".[]"))
	assert.Equal(t, "", GetRaw("x.[a]"))
}
