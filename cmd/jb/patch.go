package main

import (
	"fmt"

	"github.com/signadot/jabert/patch"

	"github.com/scott-cotton/cli"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := cfg.decodeFile(cc, args[0])
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args[1:])
	if err != nil {
		return err
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}
	for _, in := range ins {
		doc, err := cfg.decode(in)
		if err != nil {
			return err
		}
		res, err := apply(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", in.name, err)
		}
		if err := cfg.output(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
