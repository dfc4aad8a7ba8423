package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/lattice/format"
	"github.com/signadot/lattice/tree"
)

type EncState struct {
	indent int
	format format.Format
	colors *Colors
}

// Encode writes node to w in the configured format (YAML by default),
// followed by a newline.
func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal is Encode to a byte slice.
func Marshal(node *tree.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.YAMLFormat:
		d, err = yaml.MarshalWithOptions(YAMLValue(node), yaml.Indent(es.indent), yaml.IndentSequence(true))
	case format.JSONFormat:
		d, err = marshalJSON(node, es.indent)
	case format.TreeFormat:
		return []byte(treeView(node, es.colors)), nil
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return nil, err
	}
	if es.colors != nil {
		d = es.colors.colorize(d)
	}
	if !bytes.HasSuffix(d, []byte("\n")) {
		d = append(d, '\n')
	}
	return d, nil
}

// YAMLValue converts a node value to what the YAML encoder expects: nodes
// become ordered yaml.MapSlice values.
func YAMLValue(v any) any {
	switch x := v.(type) {
	case *tree.Node:
		res := make(yaml.MapSlice, 0, x.Len())
		for k, cv := range x.All() {
			res = append(res, yaml.MapItem{Key: k, Value: YAMLValue(cv)})
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = YAMLValue(x[i])
		}
		return res
	}
	return v
}
