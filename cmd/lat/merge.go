package main

import (
	"fmt"

	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/merge"

	"github.com/scott-cotton/cli"
)

func mergeDocs(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	op, err := merge.ParseOp(cfg.Op)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 args, got %v", cli.ErrUsage, args)
	}
	res, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range args[1:] {
		n, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err = merge.Apply(op, res, n)
		if err != nil {
			return fmt.Errorf("error merging %s: %w", file, err)
		}
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func join(cfg *JoinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Join.Parse(cc, args)
	if err != nil {
		cfg.Join.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	how, err := merge.ParseHow(cfg.How)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	mf, err := merge.ParseMerge(cfg.Merge)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: join requires 2 args, got %v", cli.ErrUsage, args)
	}
	l, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	r, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	res, err := merge.Join(l, r, how, merge.WithMerge(mf))
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
