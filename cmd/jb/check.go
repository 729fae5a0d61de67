package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, in := range ins {
		problems := checkInput(cfg, in)
		for _, p := range problems {
			fmt.Fprintf(cc.Out, "%s: %s\n", in.name, p)
		}
		if len(problems) != 0 {
			failed++
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", in.name)
		}
	}
	if failed != 0 {
		theLog.Debug("check failed", "files", failed, "of", len(ins))
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInput returns a description of each way in which the codecs
// disagree on in.
func checkInput(cfg *CheckConfig, in input) []string {
	var problems []string
	parsed := make([]*ir.Node, 0, 2)
	for _, v := range codec.Variants() {
		node, err := codec.Unmarshal(cfg.parser(in.name, v), in.data)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s parser: %v", v, err))
			continue
		}
		parsed = append(parsed, node)
	}
	switch len(parsed) {
	case 0:
		return problems
	case 1:
		return append(problems, "only one parser accepts the document")
	}
	if !ir.Equal(parsed[0], parsed[1]) {
		problems = append(problems, "parsers disagree:\n"+describe(libdiff.Diff(parsed[0], parsed[1])))
	}
	doc := parsed[0]
	for _, ev := range codec.Variants() {
		d, err := codec.Marshal(codec.For(ev), doc)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s emitter: %v", ev, err))
			continue
		}
		for _, pv := range codec.Variants() {
			back, err := codec.Unmarshal(codec.For(pv), d)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s emitter, %s parser: %v", ev, pv, err))
				continue
			}
			if !ir.Equal(doc, back) {
				problems = append(problems, fmt.Sprintf("%s emitter, %s parser: round trip differs:\n%s",
					ev, pv, describe(libdiff.Diff(doc, back))))
			}
		}
	}
	return problems
}

func describe(changes []libdiff.Change) string {
	buf := &strings.Builder{}
	writeChanges(buf, changes, false)
	return buf.String()
}
