package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/format"
	"github.com/signadot/lattice/parse"
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Indent int    `cli:"name=indent desc='indentation width, 0 for single line json'"`
	Sep    string `cli:"name=sep desc='path separator (default /)'"`
	Lock   bool   `cli:"name=lock desc='build trees with a shared lock'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	T bool `cli:"name=t aliases=tree desc='output a tree view'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) treeOpts() []tree.Option {
	return []tree.Option{tree.WithSep(cfg.Sep), tree.WithLocking(cfg.Lock)}
}

// parseOpts gives the parse options for the input named path. Without an
// explicit input format, the file suffix decides and YAML is the fallback,
// which also reads JSON.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat := format.YAMLFormat
	if f, ok := format.FromSuffix(filepath.Ext(path)); ok {
		fmat = f
	}
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{
		parse.ParseFormat(fmat),
		parse.ParseTreeOptions(cfg.treeOpts()...),
	}
}

func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.T:
		fmat = format.TreeFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{encode.EncodeFormat(fmat)}
	if cfg.optSet("indent") {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if c := cfg.colors(w); c != nil {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// colors gives the colors to encode with, or nil. Color is on when forced
// with -color, or when w is a terminal and -color was not given.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		color.NoColor = false
		return encode.NewColors()
	}
	if cfg.optSet("color") {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return encode.NewColors()
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='treat the value as a string'"`
	Force  bool `cli:"name=f desc='replace leaves in the way of the path'"`

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Del *cli.Command
}

type FlattenConfig struct {
	*MainConfig
	Del string `cli:"name=d desc='flat key delimiter (default the path separator)'"`

	Flatten *cli.Command
}

type UnflattenConfig struct {
	*MainConfig
	Del string `cli:"name=d desc='flat key delimiter (default the path separator)'"`

	Unflatten *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Op string `cli:"name=op desc='set operation: union/|, intersect/&, difference/-, symdiff/^'"`

	Merge *cli.Command
}

type JoinConfig struct {
	*MainConfig
	How   string `cli:"name=how desc='inner, left, right or outer'"`
	Merge string `cli:"name=merge desc='conflicting fields: pair, left or right'"`

	Join *cli.Command
}

type PurgeConfig struct {
	*MainConfig
	Purge *cli.Command
}

type SortConfig struct {
	*MainConfig
	Recursive bool `cli:"name=r desc='sort every level'"`

	Sort *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	JSON    bool `cli:"name=jp desc='output a json patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='patch is a json merge patch'"`

	Patch *cli.Command
}
