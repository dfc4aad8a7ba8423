package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/parse"
	"github.com/signadot/lattice/tree"

	"github.com/scott-cotton/cli"
)

func readObjFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*tree.Node, error) {
	d, err := readObjFile(cc, path)
	if err != nil {
		return nil, err
	}
	n, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, nil
}

// fileArgs gives stdin when no files are named.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// eachObjFile parses each file, applies fn and writes the result, with
// documents separated by "---".
func eachObjFile(cfg *MainConfig, cc *cli.Context, files []string, fn func(*tree.Node) (*tree.Node, error)) error {
	opts := cfg.encOpts(cc.Out)
	for i, file := range fileArgs(files) {
		n, err := getObjFile(cfg, cc, file)
		if err != nil {
			return err
		}
		res, err := fn(n)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
