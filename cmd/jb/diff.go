package main

import (
	"fmt"
	"io"

	"github.com/signadot/jabert/encode"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.decodeFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.decodeFile(cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Patch {
		if err := cfg.output(cc.Out, libdiff.ToPatch(changes)); err != nil {
			return err
		}
	} else {
		writeChanges(cc.Out, changes, cfg.useColor(cc.Out))
	}
	return cli.ExitCodeErr(1)
}

// writeChanges writes one line per change, with an inline string diff
// when a string is replaced by a string.
func writeChanges(w io.Writer, changes []libdiff.Change, useColor bool) {
	del := fmt.Sprint
	ins := fmt.Sprint
	if useColor {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for i := range changes {
		c := &changes[i]
		path := c.Path
		if path == "" {
			path = "/"
		}
		switch c.Op {
		case libdiff.Delete:
			fmt.Fprintf(w, "%s %s %s\n", del("-"), path, compact(c.From))
		case libdiff.Insert:
			fmt.Fprintf(w, "%s %s %s\n", ins("+"), path, compact(c.To))
		case libdiff.Replace:
			if c.From.Type == ir.StringType && c.To.Type == ir.StringType {
				sd := libdiff.StringDiff(c.From.String, c.To.String)
				if useColor {
					sd = libdiff.PrettyStringDiff(c.From.String, c.To.String)
				}
				fmt.Fprintf(w, "~ %s %q\n", path, sd)
				continue
			}
			fmt.Fprintf(w, "~ %s %s -> %s\n", path, del(compact(c.From)), ins(compact(c.To)))
		}
	}
}

func compact(node *ir.Node) string {
	return encode.MustString(node)
}
