package main

import (
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(n *tree.Node) (*tree.Node, error) {
		return tree.FromPlain(n.Flatten(cfg.Del), cfg.treeOpts()...)
	})
}

func unflatten(cfg *UnflattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unflatten.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(n *tree.Node) (*tree.Node, error) {
		return tree.Unflatten(n.ToMap(), cfg.Del, cfg.treeOpts()...)
	})
}
