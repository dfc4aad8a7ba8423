package main

import (
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(n *tree.Node) (*tree.Node, error) {
		return n, nil
	})
}

func purge(cfg *PurgeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Purge.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(n *tree.Node) (*tree.Node, error) {
		return n, n.Purge()
	})
}

func sortDocs(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(n *tree.Node) (*tree.Node, error) {
		return n, n.SortByKey(cfg.Recursive)
	})
}
