package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/format"
	"github.com/signadot/lattice/parse"
	"github.com/signadot/lattice/patch"
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"
)

func patchDoc(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one file", cli.ErrUsage)
	}
	p, err := patchFile(cc, args[0])
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(n *tree.Node) (*tree.Node, error) {
		if cfg.Merge {
			return patch.Merge(n, p)
		}
		return patch.ApplyJSON(n, p)
	})
}

// patchFile reads a patch as JSON. Patches written in YAML are converted.
func patchFile(cc *cli.Context, path string) ([]byte, error) {
	d, err := readObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	if f, ok := format.FromSuffix(filepath.Ext(path)); ok && f.IsJSON() {
		return d, nil
	}
	if json.Valid(d) {
		return d, nil
	}
	v, err := parse.ParseValue(d, parse.ParseYAML())
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return json.Marshal(encode.JSON{V: v})
}
