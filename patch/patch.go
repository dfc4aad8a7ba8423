package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/lattice/debug"
	"github.com/signadot/lattice/encode"
	"github.com/signadot/lattice/parse"
	"github.com/signadot/lattice/tree"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// ApplyJSON applies an RFC 6902 JSON Patch to n and returns the result as
// a new tree configured like n. n is not modified. Keys of n keep their
// relative order; keys added by the patch follow them.
func ApplyJSON(n *tree.Node, ops []byte) (*tree.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return apply(n, "json patch", p.Apply)
}

// Merge applies an RFC 7386 JSON Merge Patch to n, returning a new tree.
func Merge(n *tree.Node, doc []byte) (*tree.Node, error) {
	return apply(n, "merge patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, doc)
	})
}

// CreateMerge returns the merge patch which turns from into to.
func CreateMerge(from, to *tree.Node) ([]byte, error) {
	fd, err := encode.JSON{V: from}.MarshalJSON()
	if err != nil {
		return nil, err
	}
	td, err := encode.JSON{V: to}.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(fd, td)
}

func apply(n *tree.Node, what string, f func([]byte) ([]byte, error)) (*tree.Node, error) {
	if debug.Patch() {
		debug.Logf("%s called on %v\n", what, n)
	}
	d, err := encode.JSON{V: n}.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseJSON(), parse.ParseTreeOptions(
		tree.WithKey(n.Key()),
		tree.WithSep(n.Sep()),
		tree.WithLazyCreate(n.LazyCreate()),
		tree.WithLocking(n.Lock() != nil),
	))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if err := restoreOrder(n, res); err != nil {
		return nil, err
	}
	return res, nil
}

// restoreOrder reorders the entries of res to follow orig where the two
// share keys. The JSON round trip loses non string keys, so keys are
// matched by their printed form.
func restoreOrder(orig, res *tree.Node) error {
	rank := map[string]int{}
	for k := range orig.All() {
		rank[fmt.Sprint(k)] = len(rank)
	}
	pos := func(k any) int {
		if r, ok := rank[fmt.Sprint(k)]; ok {
			return r
		}
		return len(rank)
	}
	err := res.SortFunc(func(a, b any) int {
		return pos(a) - pos(b)
	})
	if err != nil {
		return err
	}
	for k, c := range res.Children() {
		v, _ := orig.Lookup(k)
		if oc, ok := v.(*tree.Node); ok {
			if err := restoreOrder(oc, c); err != nil {
				return err
			}
		}
	}
	return nil
}
