package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lattice/libdiff"
	"github.com/signadot/lattice/tree"
)

func doc() *tree.Node {
	return tree.MustFromPlain(tree.Map{
		{Key: "z", Value: 1},
		{Key: "m", Value: tree.Map{{Key: "y", Value: "a"}, {Key: "b", Value: true}}},
		{Key: "a", Value: []any{1, 2}},
	}, tree.WithSep("."))
}

func TestApplyJSON(t *testing.T) {
	n := doc()
	before := n.ToMap()
	res, err := ApplyJSON(n, []byte(`[
		{"op": "replace", "path": "/m/y", "value": "changed"},
		{"op": "add", "path": "/a/-", "value": 3},
		{"op": "remove", "path": "/z"},
		{"op": "add", "path": "/new", "value": {"k": null}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := tree.Map{
		{Key: "m", Value: tree.Map{{Key: "y", Value: "changed"}, {Key: "b", Value: true}}},
		{Key: "a", Value: []any{1, 2, 3}},
		{Key: "new", Value: tree.Map{{Key: "k", Value: nil}}},
	}
	if diff := cmp.Diff(want, res.ToMap()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, n.ToMap()); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
	if res.Sep() != "." {
		t.Errorf("result sep %q", res.Sep())
	}
}

func TestApplyJSONErrors(t *testing.T) {
	if _, err := ApplyJSON(doc(), []byte(`not json`)); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
	_, err := ApplyJSON(doc(), []byte(`[{"op": "remove", "path": "/missing"}]`))
	if !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
}

func TestMerge(t *testing.T) {
	res, err := Merge(doc(), []byte(`{"z": null, "m": {"b": false, "c": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := tree.Map{
		{Key: "m", Value: tree.Map{{Key: "y", Value: "a"}, {Key: "b", Value: false}, {Key: "c", Value: 1}}},
		{Key: "a", Value: []any{1, 2}},
	}
	if diff := cmp.Diff(want, res.ToMap()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	mp, err := CreateMerge(doc(), res)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Merge(doc(), mp)
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(again, res) {
		t.Errorf("created merge patch %s: got %v want %v", mp, again, res)
	}
}

func TestFromChanges(t *testing.T) {
	from := tree.MustFromPlain(tree.Map{{Key: "a", Value: 1}, {Key: "b/c", Value: tree.Map{{Key: "d", Value: "x"}}}, {Key: "gone", Value: 1}})
	to := tree.MustFromPlain(tree.Map{{Key: "a", Value: 2}, {Key: "b/c", Value: tree.Map{{Key: "d", Value: "y"}}}, {Key: "added", Value: []any{1}}})
	ops, err := FromChanges(libdiff.Diff(from, to))
	if err != nil {
		t.Fatal(err)
	}
	res, err := ApplyJSON(from, ops)
	if err != nil {
		t.Fatalf("%v\n%s", err, ops)
	}
	if !tree.Equal(res, to) {
		t.Errorf("got %v want %v", res, to)
	}
}

func TestPointer(t *testing.T) {
	if got := Pointer([]any{"a/b", "c~d", 3}); got != "/a~1b/c~0d/3" {
		t.Errorf("got %s", got)
	}
}
