package gomap

import "github.com/signadot/jabert/codec"

// MapOption configures ToIR, FromIR, ToJSON and FromJSON.
type MapOption func(*mapConfig)

type mapConfig struct {
	registry *Registry
	codec    codec.Codec
	maxDepth int
}

func newMapConfig(opts []MapOption) *mapConfig {
	cfg := &mapConfig{
		registry: DefaultRegistry(),
		codec:    codec.Direct{},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func WithRegistry(r *Registry) MapOption {
	return func(c *mapConfig) { c.registry = r }
}

// WithCodec sets the codec used by ToJSON and FromJSON.  The default is
// codec.Direct.
func WithCodec(cc codec.Codec) MapOption {
	return func(c *mapConfig) { c.codec = cc }
}

// MaxDepth bounds the nesting of values.  n <= 0 means no bound.
func MaxDepth(n int) MapOption {
	return func(c *mapConfig) { c.maxDepth = n }
}
