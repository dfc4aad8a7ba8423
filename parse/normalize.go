package parse

import (
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/lattice/tree"
)

// Normalizer maps decoded YAML values to the values trees hold: ordered
// mappings become tree.Map and integers which fit become int.
type Normalizer struct{}

var _ tree.Normalizer = Normalizer{}

func (Normalizer) Normalize(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(tree.Map, len(x))
		for i := range x {
			res[i] = tree.Item{Key: scalar(x[i].Key), Value: x[i].Value}
		}
		return res
	case map[string]any:
		return v
	}
	return scalar(v)
}

func scalar(v any) any {
	switch x := v.(type) {
	case uint64:
		if x <= math.MaxInt {
			return int(x)
		}
	case int64:
		if x >= math.MinInt && x <= math.MaxInt {
			return int(x)
		}
	case uint:
		if x <= math.MaxInt {
			return int(x)
		}
	}
	return v
}
