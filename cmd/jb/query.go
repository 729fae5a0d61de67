package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jabert/eval"
	"github.com/signadot/jabert/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	var src string
	if !cfg.Expand {
		if len(args) == 0 {
			return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
		}
		src, args = args[0], args[1:]
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	env := eval.Env(cfg.Env)
	for _, in := range ins {
		doc, err := cfg.decode(in)
		if err != nil {
			return err
		}
		var res *ir.Node
		switch {
		case cfg.Expand:
			res, err = eval.ExpandIR(doc, env)
		case cfg.Filter:
			res, err = eval.Filter(src, doc, env)
		default:
			res, err = eval.Eval(src, doc, env)
		}
		if err != nil {
			return fmt.Errorf("error evaluating over %s: %w", in.name, err)
		}
		if err := cfg.output(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc binds the dotted path key of a "key=val" argument to val read
// as yaml.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
