package direct

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
	"github.com/signadot/jabert/token"
)

var agreeDocs = []string{
	`null`,
	`true`,
	`false`,
	`0`,
	`-0`,
	`22`,
	`-1.5e-3`,
	`1E+2`,
	`123456789012345678901234567890`,
	`"hello"`,
	`"\"\\\/\b\f\n\r\t"`,
	`"é😀"`,
	`"\ud83d"`,
	`"\u00e9\ud83d\ude00"`,
	`[]`,
	`{}`,
	` [ 1 , [ ] , { } ] `,
	"{\n\t\"a\": {\"b\": [true, false, null]},\r\n\t\"c\": -2\n}",
	`{"a": 1, "a": 2}`,
	`[1,2,3,4,5]`,
}

func TestParseAgrees(t *testing.T) {
	for _, doc := range agreeDocs {
		want, err := parse.ParseString(doc)
		if err != nil {
			t.Fatalf("%q: grammar parser: %v", doc, err)
		}
		got, err := ParseBytes([]byte(doc))
		if err != nil {
			t.Errorf("%q: %v", doc, err)
			continue
		}
		if !ir.Equal(got, want) {
			t.Errorf("%q: got %v, want %v", doc, ir.ToAny(got), ir.ToAny(want))
		}
	}
}

func TestParseOneByteReader(t *testing.T) {
	doc := `{"list":[1,2.5,"xA"],"t":true,"n":null}`
	got, err := Parse(iotest.OneByteReader(strings.NewReader(doc)))
	if err != nil {
		t.Fatal(err)
	}
	want := parse.MustParse(doc)
	if !ir.Equal(got, want) {
		t.Errorf("got %v", ir.ToAny(got))
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"[]", "{}", " [\n] ", "{\t}"} {
		node, err := ParseBytes([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if node.Len() != 0 {
			t.Errorf("%q: %d entries", in, node.Len())
		}
	}
}

func TestBadParse(t *testing.T) {
	tests := []struct {
		in  string
		err error
		off int
	}{
		{in: ``, err: token.ErrEmptyDoc, off: 0},
		{in: `  `, err: token.ErrEmptyDoc, off: 2},
		{in: `[`, err: token.ErrUnexpectedEOF, off: 1},
		{in: `[1`, err: token.ErrUnexpectedEOF, off: 2},
		{in: `[1,`, err: token.ErrUnexpectedEOF, off: 3},
		{in: `{"a"`, err: token.ErrUnexpectedEOF, off: 4},
		{in: `{"a":`, err: token.ErrUnexpectedEOF, off: 5},
		{in: `{"a":1`, err: token.ErrUnexpectedEOF, off: 6},
		{in: `[1 2]`, err: token.ErrUnexpected, off: 3},
		{in: `[1,]`, err: token.ErrUnexpected, off: 3},
		{in: `[,1]`, err: token.ErrUnexpected, off: 1},
		{in: `{1:2}`, err: token.ErrUnexpected, off: 1},
		{in: `{"a" 2}`, err: token.ErrUnexpected, off: 5},
		{in: `{"a":1,}`, err: token.ErrUnexpected, off: 7},
		{in: `{"a":1]`, err: token.ErrUnexpected, off: 6},
		{in: `]`, err: token.ErrUnexpected, off: 0},
		{in: `1 2`, err: token.ErrTrailing, off: 2},
		{in: `"\x"`, err: token.ErrBadEscape, off: 1},
		{in: `"\u12x4"`, err: token.ErrBadUnicode, off: 1},
		{in: `"abc`, err: token.ErrUnterminated, off: 4},
		{in: "\"a\x01\"", err: token.ErrUnicodeControl, off: 2},
		{in: "\"a\xff\"", err: token.ErrBadUTF8, off: 2},
		{in: `01`, err: token.ErrNumberLeadingZero, off: 2},
		{in: `1.`, err: token.ErrNumber, off: 1},
		{in: `-`, err: token.ErrNumber, off: 1},
		{in: `1e`, err: token.ErrNumber, off: 1},
		{in: `tru`, err: token.ErrUnexpectedEOF, off: 3},
		{in: `trux`, err: token.ErrLiteral, off: 3},
		{in: `nullx`, err: token.ErrLiteral, off: 4},
	}
	for _, tt := range tests {
		_, err := ParseBytes([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: error %v, want %v", tt.in, err, tt.err)
			continue
		}
		var fe *token.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%q: %T is not a format error", tt.in, err)
			continue
		}
		if fe.Offset() != tt.off {
			t.Errorf("%q: offset %d, want %d", tt.in, fe.Offset(), tt.off)
		}
		if _, gerr := parse.ParseString(tt.in); gerr == nil {
			t.Errorf("%q: accepted by grammar parser", tt.in)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat(`{"a":`, 20) + "0" + strings.Repeat("}", 20)
	if _, err := ParseBytes([]byte(deep), MaxDepth(20)); err != nil {
		t.Fatal(err)
	}
	_, err := ParseBytes([]byte(deep), MaxDepth(19))
	if !errors.Is(err, token.ErrDepth) {
		t.Fatalf("expected depth error, got %v", err)
	}
}

func TestPositions(t *testing.T) {
	positions := map[*ir.Node]*token.Pos{}
	node, err := ParseBytes([]byte("[\n  1,\n  \"two\"\n]"), Positions(positions))
	if err != nil {
		t.Fatal(err)
	}
	pos := positions[node.Values[1]]
	if pos == nil {
		t.Fatal("no position")
	}
	if pos.I != 9 || pos.Line() != 2 || pos.Col() != 2 {
		t.Errorf("got %d (%d:%d)", pos.I, pos.Line(), pos.Col())
	}
}

func TestReaderUnread(t *testing.T) {
	r := NewReader(strings.NewReader("aé"))
	c, err := r.read()
	if err != nil || c != 'a' || r.Offset() != 1 {
		t.Fatalf("read %q at %d: %v", c, r.Offset(), err)
	}
	c, _ = r.read()
	if c != 'é' || r.Offset() != 3 {
		t.Fatalf("read %q at %d", c, r.Offset())
	}
	r.unread()
	if r.Offset() != 1 {
		t.Fatalf("offset after unread %d", r.Offset())
	}
	c, _ = r.read()
	if c != 'é' || r.Offset() != 3 {
		t.Fatalf("reread %q at %d", c, r.Offset())
	}
}
