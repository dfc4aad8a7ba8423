package main

import (
	"fmt"
	"io"

	"github.com/signadot/lattice/libdiff"
	"github.com/signadot/lattice/patch"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	changes := libdiff.Diff(from, to)
	if cfg.JSON {
		d, err := patch.FromChanges(changes)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	} else if err := writeChanges(cfg.MainConfig, cc.Out, changes); err != nil {
		return err
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

var kindColors = map[libdiff.Kind]*color.Color{
	libdiff.Added:    color.New(color.FgGreen),
	libdiff.Removed:  color.New(color.FgRed),
	libdiff.Modified: color.New(color.FgYellow),
	libdiff.Moved:    color.New(color.FgCyan),
}

func writeChanges(cfg *MainConfig, w io.Writer, changes []libdiff.Change) error {
	colored := cfg.colors(w) != nil
	for i := range changes {
		line := changes[i].String()
		if colored {
			line = kindColors[changes[i].Kind].Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
