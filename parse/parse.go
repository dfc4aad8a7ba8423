package parse

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/lattice/tree"
)

// Parse decodes a YAML or JSON mapping into a tree. Key order is kept. An
// empty document gives an empty tree.
func Parse(d []byte, opts ...ParseOption) (*tree.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	v, err := decode(d, o)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return tree.New(o.treeOpts...), nil
	}
	topts := append([]tree.Option{tree.WithNormalizer(Normalizer{})}, o.treeOpts...)
	n, err := tree.FromPlain(v, topts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAMapping, err)
	}
	return n, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*tree.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseValue decodes a single YAML or JSON value of any kind, normalized
// the way Parse normalizes leaves. Mappings are returned as tree.Map.
func ParseValue(d []byte, opts ...ParseOption) (any, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	v, err := decode(d, o)
	if err != nil {
		return nil, err
	}
	return deepNormalize(v), nil
}

func decode(d []byte, o *parseOpts) (any, error) {
	if !o.format.CanParse() {
		return nil, fmt.Errorf("%w: %s", ErrFormat, o.format)
	}
	// JSON is decoded by the YAML decoder, which keeps key order.
	if o.format.IsJSON() && !json.Valid(d) {
		return nil, ErrBadJSON
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

func deepNormalize(v any) any {
	v = Normalizer{}.Normalize(v)
	switch x := v.(type) {
	case tree.Map:
		for i := range x {
			x[i].Value = deepNormalize(x[i].Value)
		}
	case []any:
		for i := range x {
			x[i] = deepNormalize(x[i])
		}
	}
	return v
}
