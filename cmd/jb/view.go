package main

import (
	"io"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	return viewInputs(cfg, cc.Out, ins)
}

func viewInputs(cfg *ViewConfig, w io.Writer, ins []input) error {
	for _, in := range ins {
		node, err := cfg.decode(in)
		if err != nil {
			return err
		}
		if err := cfg.output(w, node); err != nil {
			return err
		}
	}
	return nil
}
