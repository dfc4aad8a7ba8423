package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/format"
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	for i, file := range fileArgs(args[1:]) {
		n, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		v, err := n.Resolve(path, false)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		if i > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if err := writeValue(cfg.MainConfig, cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}

// writeValue writes a subtree or a leaf in the output format. Leaves in
// the tree view are written as YAML.
func writeValue(cfg *MainConfig, w io.Writer, v any) error {
	opts := cfg.encOpts(w)
	if n, ok := v.(*tree.Node); ok {
		return encode.Encode(n, w, opts...)
	}
	var (
		d   []byte
		err error
	)
	if encode.FormatFromOpts(opts...) == format.JSONFormat {
		d, err = json.Marshal(encode.JSON{V: v})
		d = append(d, '\n')
	} else {
		d, err = yaml.Marshal(encode.YAMLValue(v))
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
