package codec

import (
	"bytes"
	"io"

	"github.com/signadot/jabert/direct"
	"github.com/signadot/jabert/encode"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
)

type Codec interface {
	Emit(node *ir.Node, w io.Writer) error
	Parse(r io.Reader) (*ir.Node, error)
}

// Grammar parses by tokenizing the whole input and matching ordered
// alternatives, and emits with package encode.
type Grammar struct {
	EncodeOpts []encode.EncodeOption
	ParseOpts  []parse.ParseOption
}

func (g Grammar) Emit(node *ir.Node, w io.Writer) error {
	return encode.Encode(node, w, g.EncodeOpts...)
}

func (g Grammar) Parse(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, g.ParseOpts...)
}

// Direct parses and emits in a single pass.
type Direct struct {
	Opts []direct.Option
}

func (Direct) Emit(node *ir.Node, w io.Writer) error {
	return direct.Emit(node, w)
}

func (d Direct) Parse(r io.Reader) (*ir.Node, error) {
	return direct.Parse(r, d.Opts...)
}

func Marshal(c Codec, node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := c.Emit(node, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(c Codec, d []byte) (*ir.Node, error) {
	return c.Parse(bytes.NewReader(d))
}
