package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPurge(t *testing.T) {
	tests := []struct {
		in   map[string]any
		want map[any]any
	}{
		{
			in: map[string]any{
				"temporary": map[string]any{"unused": map[string]any{"path": map[string]any{}}},
				"settings":  map[string]any{"port": 8080},
			},
			want: map[any]any{"settings": map[any]any{"port": 8080}},
		},
		{
			in:   map[string]any{"a": map[string]any{"x": 1, "e": map[string]any{}}},
			want: map[any]any{"a": map[any]any{"x": 1}},
		},
		{
			in:   map[string]any{"e": map[string]any{}},
			want: map[any]any{},
		},
	}
	for i, tt := range tests {
		n := MustFromPlain(tt.in)
		if err := n.Purge(); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tt.want, n.ToPlain()); diff != "" {
			t.Errorf("%d (-want +got):\n%s", i, diff)
		}
	}
}

func TestDetach(t *testing.T) {
	n := MustFromPlain(map[string]any{"a": map[string]any{"b": 1}}, WithLocking(true))
	if _, err := n.Detach(); !errors.Is(err, ErrStructural) {
		t.Errorf("detach root: got %v", err)
	}
	a, _ := n.Node("a")
	got, err := a.Detach()
	if err != nil {
		t.Fatal(err)
	}
	if got != a || a.Parent() != nil || n.Has("a") {
		t.Errorf("not detached")
	}
	if a.Lock() == nil || a.Lock() == n.Lock() {
		t.Errorf("detached subtree shares the old lock")
	}
}

func TestAttachTo(t *testing.T) {
	n := New()
	c := MustFromPlain(map[string]any{"d": map[string]any{"e": 1}}, WithKey("c"))
	if err := c.AttachTo(n, nil); err != nil {
		t.Fatal(err)
	}
	if v, _ := n.Lookup("c"); v != c {
		t.Errorf("not attached under own key")
	}
	if err := c.AttachTo(New(), "x"); !errors.Is(err, ErrStructural) {
		t.Errorf("attach parented: got %v", err)
	}

	r := MustFromPlain(map[string]any{"d": map[string]any{}})
	d, _ := r.Node("d")
	if err := r.AttachTo(d, "x"); !errors.Is(err, ErrStructural) {
		t.Errorf("attach beneath itself: got %v", err)
	}
	if err := r.AttachTo(r, "x"); !errors.Is(err, ErrStructural) {
		t.Errorf("attach to itself: got %v", err)
	}

	frozen := New()
	frozen.Freeze()
	err := New().AttachTo(frozen, "x")
	if !errors.Is(err, ErrStructural) || !errors.Is(err, ErrModificationDenied) {
		t.Errorf("attach to frozen: got %v", err)
	}
}

func seqNode(t *testing.T, n *Node, key any, i int) *Node {
	t.Helper()
	v, _ := n.Lookup(key)
	seq, ok := v.([]any)
	if !ok || i >= len(seq) {
		t.Fatalf("%v: not a sequence of %d: %v", key, i+1, v)
	}
	c, ok := seq[i].(*Node)
	if !ok {
		t.Fatalf("%v[%d] is %T", key, i, seq[i])
	}
	return c
}

func TestSequenceHeldNodes(t *testing.T) {
	r := MustFromPlain(map[string]any{"l": []any{map[string]any{"x": 1}}})
	held := seqNode(t, r, "l", 0)
	if err := r.AttachTo(held, "back"); !errors.Is(err, ErrStructural) {
		t.Errorf("attach root beneath its own element: got %v", err)
	}
	if held.Has("back") {
		t.Errorf("cycle created")
	}

	other := New()
	if err := held.AttachTo(other, "dup"); !errors.Is(err, ErrStructural) {
		t.Errorf("attach held node: got %v", err)
	}
	if err := other.Set("dup", held); !errors.Is(err, ErrStructural) {
		t.Errorf("assign held node: got %v", err)
	}
	if err := other.Set("dup", []any{held}); !errors.Is(err, ErrStructural) {
		t.Errorf("assign held node in a sequence: got %v", err)
	}
	if err := r.Set("m", held); !errors.Is(err, ErrStructural) {
		t.Errorf("assign held node to a second key: got %v", err)
	}
	if _, err := held.Detach(); !errors.Is(err, ErrStructural) {
		t.Errorf("detach held node: got %v", err)
	}
	if other.Has("dup") || r.Has("m") {
		t.Errorf("rejected assignment stored a value")
	}

	d := MustFromPlain(map[string]any{"d": map[string]any{}})
	dd, _ := d.Node("d")
	if err := dd.Set("l", []any{map[string]any{}}); err != nil {
		t.Fatal(err)
	}
	deep := seqNode(t, dd, "l", 0)
	if err := d.AttachTo(deep, "up"); !errors.Is(err, ErrStructural) {
		t.Errorf("attach root beneath a nested element: got %v", err)
	}

	// overwriting the sequence releases its elements
	if err := r.Set("l", []any{map[string]any{"x": 1}}); err != nil {
		t.Fatal(err)
	}
	if err := held.AttachTo(other, "dup"); err != nil {
		t.Fatalf("released element: %v", err)
	}
	if held.Parent() != other {
		t.Errorf("released element not attached")
	}
}

func TestTransplant(t *testing.T) {
	ctx := context.Background()
	n := MustFromPlain(map[string]any{"a": map[string]any{"b": map[string]any{"v": 1}}}, WithLocking(true))
	m := New(WithLocking(true))
	a, _ := n.Node("a")
	b, _ := a.Node("b")

	if err := a.Transplant(ctx, b, "x"); !errors.Is(err, ErrStructural) {
		t.Errorf("beneath itself: got %v", err)
	}
	if a.Parent() != n {
		t.Fatalf("failed transplant moved the node")
	}

	// hold the source lock while moving
	hctx, release := n.Acquire(ctx)
	if err := b.Transplant(hctx, m, "moved"); err != nil {
		t.Fatal(err)
	}
	release()
	if v, _ := m.Lookup("moved"); v != b {
		t.Errorf("not moved")
	}
	if a.Has("b") || b.Parent() != m || b.Key() != "moved" {
		t.Errorf("source still holds b")
	}
	if b.Lock() != m.Lock() {
		t.Errorf("moved subtree did not adopt the destination lock")
	}

	m.Freeze()
	c := MustFromPlain(map[string]any{"c": map[string]any{}})
	cc, _ := c.Node("c")
	if err := cc.Transplant(ctx, m, nil); !errors.Is(err, ErrStructural) || !errors.Is(err, ErrModificationDenied) {
		t.Errorf("frozen destination: got %v", err)
	}
	if cc.Parent() != c {
		t.Errorf("denied transplant moved the node")
	}
	if err := c.Transplant(ctx, m, nil); !errors.Is(err, ErrStructural) {
		t.Errorf("transplant root: got %v", err)
	}
}
