package libdiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/lattice/tree"
)

func TestDiff(t *testing.T) {
	from := tree.MustFromPlain(tree.Map{{Key: "a", Value: 1}, {Key: "b", Value: tree.Map{{Key: "c", Value: "hello"}}}, {Key: "d", Value: 2}})
	to := tree.MustFromPlain(tree.Map{{Key: "a", Value: 1}, {Key: "b", Value: tree.Map{{Key: "c", Value: "help"}}}, {Key: "e", Value: 3}})
	changes := Diff(from, to)
	type summary struct {
		Path string
		Kind Kind
	}
	var got []summary
	for i := range changes {
		got = append(got, summary{changes[i].PathString("/"), changes[i].Kind})
	}
	want := []summary{{"b/c", Modified}, {"e", Added}, {"d", Removed}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if txt := changes[0].Text; !strings.Contains(txt, "{+") || !strings.Contains(txt, "[-") {
		t.Errorf("string diff %q", txt)
	}
	if len(Diff(from, from.Clone())) != 0 {
		t.Errorf("diff of equal trees is not empty")
	}
}

func TestDiffPatchRoundTrip(t *testing.T) {
	tests := []struct {
		from, to tree.Map
	}{
		{
			from: tree.Map{{Key: "a", Value: 1}, {Key: "b", Value: tree.Map{{Key: "c", Value: "hello"}}}, {Key: "d", Value: 2}},
			to:   tree.Map{{Key: "a", Value: 1}, {Key: "b", Value: tree.Map{{Key: "c", Value: "help"}}}, {Key: "e", Value: 3}},
		},
		{
			from: tree.Map{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}},
			to:   tree.Map{{Key: "c", Value: 3}, {Key: "a", Value: 1}, {Key: "b", Value: 2}},
		},
		{
			from: tree.Map{{Key: "x", Value: tree.Map{{Key: "y", Value: []any{1, 2}}}}},
			to:   tree.Map{{Key: "x", Value: 5}, {Key: "z", Value: tree.Map{}}},
		},
		{
			from: tree.Map{},
			to:   tree.Map{{Key: "new", Value: tree.Map{{Key: "deep", Value: true}}}},
		},
	}
	for i, tt := range tests {
		from, to := tree.MustFromPlain(tt.from), tree.MustFromPlain(tt.to)
		changes := Diff(from, to)
		n := from.Clone()
		if err := Patch(n, changes); err != nil {
			t.Fatalf("%d: %v\n%s", i, err, Format(changes))
		}
		if !tree.Equal(n, to) {
			t.Errorf("%d: got %v want %v", i, n, to)
		}
	}
}

func TestMoved(t *testing.T) {
	from := tree.MustFromPlain(tree.Map{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}})
	to := tree.MustFromPlain(tree.Map{{Key: "c", Value: 3}, {Key: "a", Value: 1}, {Key: "b", Value: 2}})
	changes := Diff(from, to)
	if len(changes) != 1 || changes[0].Kind != Moved || changes[0].Path[0] != "c" {
		t.Errorf("got\n%s", Format(changes))
	}
}

func TestPatchConflict(t *testing.T) {
	from := tree.MustFromPlain(tree.Map{{Key: "a", Value: "hello"}})
	to := tree.MustFromPlain(tree.Map{{Key: "a", Value: "help"}})
	changes := Diff(from, to)
	if err := Patch(to.Clone(), changes); !errors.Is(err, ErrConflict) {
		t.Errorf("got %v", err)
	}
	frozen := from.Clone()
	frozen.Freeze()
	if err := Patch(frozen, changes); !errors.Is(err, tree.ErrModificationDenied) {
		t.Errorf("got %v", err)
	}
}
