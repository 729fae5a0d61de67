package main

import (
	"fmt"

	"github.com/signadot/jabert"
	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a match document", cli.ErrUsage)
	}
	var m *ir.Node
	if cfg.File {
		m, err = cfg.decodeFile(cc, args[0])
	} else {
		m, err = codec.Unmarshal(cfg.parser("", cfg.Parser), []byte(args[0]))
	}
	if err != nil {
		return fmt.Errorf("error decoding match %q: %w", args[0], err)
	}
	ins, err := readInputs(cc, args[1:])
	if err != nil {
		return err
	}
	found := 0
	for _, in := range ins {
		doc, err := cfg.decode(in)
		if err != nil {
			return err
		}
		ok, err := jabert.Match(doc, m)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", in.name, err)
		}
		theLog.Debug("match", "file", in.name, "matched", ok)
		if !ok {
			continue
		}
		found++
		if cfg.Trim {
			doc = jabert.Trim(m, doc)
		}
		if err := cfg.output(cc.Out, doc); err != nil {
			return err
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
