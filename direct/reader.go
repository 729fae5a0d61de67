package direct

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/signadot/jabert/token"
)

const contextSize = 16

// Reader reads runes with offset tracking and a single rune of
// pushback.
type Reader struct {
	br     *bufio.Reader
	off    int
	last   rune
	size   int
	pushed bool

	posDoc *token.PosDoc
	recent []byte
	opts   *readOpts
	depth  int
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{
		br:     br,
		posDoc: token.NewPosDoc(nil),
		opts:   newReadOpts(opts),
	}
}

// Offset returns the offset of the next rune to be read.
func (r *Reader) Offset() int {
	return r.off
}

func (r *Reader) read() (rune, error) {
	if r.pushed {
		r.pushed = false
		r.off += r.size
		return r.last, nil
	}
	c, sz, err := r.br.ReadRune()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		r.posDoc.NL(r.off)
	}
	r.last, r.size = c, sz
	r.off += sz
	r.recent = utf8.AppendRune(r.recent, c)
	if n := len(r.recent); n > contextSize {
		r.recent = r.recent[n-contextSize:]
	}
	return c, nil
}

// unread pushes back the last rune read.  Only one rune may be pending.
func (r *Reader) unread() {
	if r.pushed || r.size == 0 {
		panic("direct: unread without read")
	}
	r.pushed = true
	r.off -= r.size
}

// at returns the offset of the last rune read.
func (r *Reader) at() int {
	return r.off - r.size
}

func (r *Reader) pos(i int) *token.Pos {
	return r.posDoc.PosWithContext(i, r.recent)
}

func (r *Reader) errAt(err error, i int) error {
	return token.NewFormatError(err, r.pos(i))
}

// skipSpace returns the next rune which is not whitespace.
func (r *Reader) skipSpace() (rune, error) {
	for {
		c, err := r.read()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c, nil
	}
}

// next is like skipSpace but end of input is an error.
func (r *Reader) next() (rune, error) {
	c, err := r.skipSpace()
	if err == io.EOF {
		return 0, r.errAt(token.ErrUnexpectedEOF, r.off)
	}
	return c, err
}
