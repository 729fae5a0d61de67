package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/jabert/codec"
	"github.com/signadot/jabert/direct"
	"github.com/signadot/jabert/encode"
	"github.com/signadot/jabert/format"
	"github.com/signadot/jabert/ir"
	"github.com/signadot/jabert/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Indent   int  `cli:"name=indent desc='indent output by this many spaces, 0 for compact'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth of input'"`
	Verbose  bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Gops     bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	InFormat, OutFormat *format.Format
	Parser, Emitter     codec.Variant

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) variantFunc(vp *codec.Variant) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		variant, err := codec.ParseVariant(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*vp = variant
		return variant, nil
	})
}

// inFormat gives the input format of file: the -I format if set, else
// the format with the file's suffix, else json.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	ext := filepath.Ext(file)
	for _, f := range format.AllFormats() {
		if f.Suffix() == ext || (f.IsYAML() && ext == ".yml") {
			return f
		}
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.MaxDepth == 0 {
		return nil
	}
	return []parse.ParseOption{parse.ParseMaxDepth(cfg.MaxDepth)}
}

// parser gives the codec reading file with the given variant.
func (cfg *MainConfig) parser(file string, v codec.Variant) codec.Codec {
	if cfg.inFormat(file).IsYAML() {
		return codec.YAML{}
	}
	if v == codec.DirectVariant {
		res := codec.Direct{}
		if cfg.MaxDepth != 0 {
			res.Opts = append(res.Opts, direct.MaxDepth(cfg.MaxDepth))
		}
		return res
	}
	return codec.Grammar{ParseOpts: cfg.parseOpts()}
}

// emitter gives the codec writing to w.  The direct emitter is compact and
// colorless, so indented or colored output always uses the grammar
// emitter.
func (cfg *MainConfig) emitter(w io.Writer) codec.Codec {
	if cfg.OutFormat != nil && cfg.OutFormat.IsYAML() {
		return codec.YAML{}
	}
	encOpts := cfg.encOpts(w)
	if cfg.Emitter == codec.DirectVariant && len(encOpts) == 0 {
		return codec.Direct{}
	}
	return codec.Grammar{EncodeOpts: encOpts}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// output writes node to w followed by a newline.
func (cfg *MainConfig) output(w io.Writer, node *ir.Node) error {
	c := cfg.emitter(w)
	d, err := codec.Marshal(c, node)
	if err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=p desc='output the difference as a JSON Patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='the patch is a JSON Merge Patch'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env    map[string]any
	Filter bool `cli:"name=f desc='filter array elements, bound to it, by the expression'"`
	Expand bool `cli:"name=x desc='expand .[expr] and $[expr] in the input instead of querying'"`

	Query *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim bool `cli:"name=trim desc='trim the results to the match'"`
	File bool `cli:"name=f desc='consider match a file path'"`

	Match *cli.Command
}
