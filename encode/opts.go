package encode

type EncodeOption func(*EncState)

// EncodeIndent makes the output span multiple lines, indenting nested
// values by n spaces per level.  n <= 0 gives compact output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
		es.wire = n <= 0
	}
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
