package parse

import (
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/token"
)

// DefaultMaxDepth bounds the nesting of arrays and objects.
const DefaultMaxDepth = 10000

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
	maxDepth  int

	depth int
	eof   *token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the position of each parsed node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseMaxDepth sets the maximum nesting depth of arrays and objects.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
