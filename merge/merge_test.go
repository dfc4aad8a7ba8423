package merge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lattice/tree"
)

func mk(t *testing.T, v any) *tree.Node {
	t.Helper()
	n, err := tree.FromPlain(v)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestUnion(t *testing.T) {
	l := mk(t, tree.Map{
		{Key: "a", Value: 1},
		{Key: "b", Value: tree.Map{{Key: "x", Value: 1}, {Key: "y", Value: 2}}},
		{Key: "c", Value: tree.Map{{Key: "z", Value: 1}}},
	})
	r := mk(t, tree.Map{
		{Key: "b", Value: tree.Map{{Key: "y", Value: 3}, {Key: "w", Value: 4}}},
		{Key: "c", Value: 5},
		{Key: "d", Value: tree.Map{{Key: "q", Value: 1}}},
	})
	got := Union(l, r)
	want := tree.Map{
		{Key: "a", Value: 1},
		{Key: "b", Value: tree.Map{{Key: "x", Value: 1}, {Key: "y", Value: 3}, {Key: "w", Value: 4}}},
		{Key: "c", Value: 5},
		{Key: "d", Value: tree.Map{{Key: "q", Value: 1}}},
	}
	if diff := cmp.Diff(want, got.ToMap()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !tree.Equal(Union(got, r), got) {
		t.Errorf("union is not idempotent on the right operand")
	}

	d, _ := got.Node("d")
	if err := d.Set("q", 2); err != nil {
		t.Fatal(err)
	}
	if v, _ := r.Get("d/q"); v != 1 {
		t.Errorf("result aliases the operand")
	}
}

func TestIntersect(t *testing.T) {
	l := mk(t, tree.Map{
		{Key: "a", Value: 1},
		{Key: "b", Value: tree.Map{{Key: "x", Value: 1}, {Key: "y", Value: 2}}},
		{Key: "c", Value: tree.Map{{Key: "z", Value: 1}}},
	})
	r := mk(t, tree.Map{
		{Key: "b", Value: tree.Map{{Key: "y", Value: 3}}},
		{Key: "c", Value: tree.Map{{Key: "other", Value: 1}}},
		{Key: "d", Value: 1},
	})
	want := tree.Map{
		{Key: "b", Value: tree.Map{{Key: "y", Value: 3}}},
		{Key: "c", Value: tree.Map{}},
	}
	if diff := cmp.Diff(want, Intersect(l, r).ToMap()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !tree.Equal(Intersect(l, l), l) {
		t.Errorf("intersection is not idempotent")
	}
}

func TestDifference(t *testing.T) {
	l := mk(t, tree.Map{
		{Key: "a", Value: 1},
		{Key: "b", Value: tree.Map{{Key: "x", Value: 1}, {Key: "y", Value: 2}}},
		{Key: "c", Value: 3},
	})
	r := mk(t, tree.Map{
		{Key: "b", Value: tree.Map{{Key: "x", Value: 1}}},
		{Key: "d", Value: 4},
	})
	diff := Difference(l, r)
	if d := cmp.Diff(tree.Map{{Key: "a", Value: 1}, {Key: "c", Value: 3}}, diff.ToMap()); d != "" {
		t.Errorf("difference (-want +got):\n%s", d)
	}
	for _, k := range diff.Keys() {
		if r.Has(k) {
			t.Errorf("key %v of the difference is in the right operand", k)
		}
	}
	sym := SymmetricDifference(l, r)
	if d := cmp.Diff([]any{"a", "c", "d"}, sym.Keys()); d != "" {
		t.Errorf("symmetric difference (-want +got):\n%s", d)
	}
}

func TestOperandsUntouched(t *testing.T) {
	l := mk(t, map[string]any{"a": map[string]any{"b": 1}, "c": 1})
	r := mk(t, map[string]any{"a": map[string]any{"b": 2}, "d": 1})
	lp, rp := l.ToPlain(), r.ToPlain()
	for _, op := range []Op{OpUnion, OpIntersect, OpDifference, OpSymDiff} {
		if _, err := Apply(op, l, r); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff(lp, l.ToPlain()); diff != "" {
		t.Errorf("left changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rp, r.ToPlain()); diff != "" {
		t.Errorf("right changed (-want +got):\n%s", diff)
	}
}

func TestResultSettings(t *testing.T) {
	l := mk(t, map[string]any{"a": 1})
	l.SetLazyCreate(true)
	locked, err := tree.FromPlain(map[string]any{"a": 1}, tree.WithLocking(true), tree.WithSep("."))
	if err != nil {
		t.Fatal(err)
	}
	u := Union(l, locked)
	if !u.LazyCreate() || u.Lock() != nil {
		t.Errorf("result does not follow the left operand")
	}
	u = Union(locked, l)
	if u.Sep() != "." || u.Lock() == nil || u.Lock() == locked.Lock() {
		t.Errorf("result lock %v sep %q", u.Lock(), u.Sep())
	}
}

func TestParseOp(t *testing.T) {
	for in, want := range map[string]Op{
		"union": OpUnion, "&": OpIntersect, "-": OpDifference, "symdiff": OpSymDiff,
	} {
		got, err := ParseOp(in)
		if err != nil || got != want {
			t.Errorf("ParseOp(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseOp("nope"); !errors.Is(err, ErrBadOp) {
		t.Errorf("got %v", err)
	}
}
