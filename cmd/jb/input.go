package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/ir"

	"github.com/scott-cotton/cli"
)

// input is the content of one input file, "-" for standard input.
type input struct {
	name string
	data []byte
}

func readInputs(cc *cli.Context, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		d, err := readFile(cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, input{name: file, data: d})
	}
	return res, nil
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}

// decode parses in with the configured parser.
func (cfg *MainConfig) decode(in input) (*ir.Node, error) {
	node, err := codec.Unmarshal(cfg.parser(in.name, cfg.Parser), in.data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", in.name, err)
	}
	return node, nil
}

func (cfg *MainConfig) decodeFile(cc *cli.Context, file string) (*ir.Node, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	return cfg.decode(input{name: file, data: d})
}
