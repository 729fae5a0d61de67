package libdiff

import "github.com/signadot/jabert/ir"

// ToPatch gives the JSON Patch document applying changes.
func ToPatch(changes []Change) *ir.Node {
	ops := make([]*ir.Node, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		kvs := []ir.KeyVal{
			{Key: "op", Val: ir.FromString(c.Op.String())},
			{Key: "path", Val: ir.FromString(c.Path)},
		}
		if c.Op != Delete {
			kvs = append(kvs, ir.KeyVal{Key: "value", Val: c.To.Clone()})
		}
		ops = append(ops, ir.FromKeyVals(kvs))
	}
	return ir.FromSlice(ops)
}
