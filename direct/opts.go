package direct

import (
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"
	"github.com/signadot/jabert/token"
)

type Option func(*readOpts)

type readOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

// MaxDepth bounds the nesting of arrays and objects.  n <= 0 means no
// bound.
func MaxDepth(n int) Option {
	return func(o *readOpts) { o.maxDepth = n }
}

// Positions records the position at which each node starts in m.
func Positions(m map[*ir.Node]*token.Pos) Option {
	return func(o *readOpts) { o.positions = m }
}

func newReadOpts(opts []Option) *readOpts {
	o := &readOpts{maxDepth: parse.DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
