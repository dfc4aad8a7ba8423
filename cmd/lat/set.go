package main

import (
	"fmt"

	"github.com/signadot/lattice/parse"
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	path := args[0]
	var v any = args[1]
	if !cfg.String {
		v, err = parse.ParseValue([]byte(args[1]))
		if err != nil {
			return fmt.Errorf("error decoding value %q: %w", args[1], err)
		}
	}
	return eachObjFile(cfg.MainConfig, cc, args[2:], func(n *tree.Node) (*tree.Node, error) {
		if cfg.Force {
			return n, n.ForceSetPath(path, v)
		}
		return n, n.SetPath(path, v)
	})
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: del requires a path and at most one file", cli.ErrUsage)
	}
	path := args[0]
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(n *tree.Node) (*tree.Node, error) {
		return n, n.DeletePath(path)
	})
}
