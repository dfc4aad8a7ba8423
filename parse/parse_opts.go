package parse

import (
	"github.com/signadot/lattice/format"
	"github.com/signadot/lattice/tree"
)

type parseOpts struct {
	format   format.Format
	treeOpts []tree.Option
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseTreeOptions passes options to the constructed root, for example
// tree.WithSep or tree.WithLocking.
func ParseTreeOptions(opts ...tree.Option) ParseOption {
	return func(o *parseOpts) { o.treeOpts = append(o.treeOpts, opts...) }
}
