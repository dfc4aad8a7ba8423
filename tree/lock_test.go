package tree

import (
	"context"
	"testing"
	"time"
)

func TestAcquireReentrant(t *testing.T) {
	n := MustFromPlain(map[string]any{"a": map[string]any{"b": 1}}, WithLocking(true))
	a, err := n.Node("a")
	if err != nil {
		t.Fatal(err)
	}
	if a.Lock() == nil || a.Lock() != n.Lock() {
		t.Fatalf("child does not share the root lock")
	}
	ctx, release := n.Acquire(context.Background())
	defer release()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, inner := a.Acquire(ctx)
		inner()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reentrant acquire blocked")
	}
	if !n.Lock().Held(ctx) {
		t.Errorf("inner release dropped the outer hold")
	}
}

func TestAcquireBlocks(t *testing.T) {
	n := New(WithLocking(true))
	_, release := n.Acquire(context.Background())
	acquired := make(chan struct{})
	go func() {
		_, r := n.Acquire(context.Background())
		close(acquired)
		r()
	}()
	select {
	case <-acquired:
		t.Fatal("second owner acquired a held lock")
	case <-time.After(50 * time.Millisecond):
	}
	release()
	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock not released")
	}
}

func TestStaleContext(t *testing.T) {
	n := New(WithLocking(true))
	ctx, release := n.Acquire(context.Background())
	release()
	if n.Lock().Held(ctx) {
		t.Fatal("released context still holds the lock")
	}
	ctx2, release2 := n.Acquire(ctx)
	if !n.Lock().Held(ctx2) {
		t.Errorf("stale context did not re-acquire")
	}
	release2()
}

func TestWithReleasesOnPanic(t *testing.T) {
	n := New(WithLocking(true))
	func() {
		defer func() { _ = recover() }()
		_ = n.With(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	}()
	done := make(chan struct{})
	go func() {
		_, r := n.Acquire(context.Background())
		r()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock leaked by panic")
	}
}

func TestUnlockedAcquire(t *testing.T) {
	n := New()
	ctx, release := n.Acquire(nil)
	if ctx == nil {
		t.Fatal("nil context")
	}
	release()
}

func TestLockPropagation(t *testing.T) {
	n := New(WithLocking(true))
	m := MustFromPlain(map[string]any{
		"x": map[string]any{"y": 1},
		"l": []any{map[string]any{"z": 1}},
	})
	if err := n.Set("m", m); err != nil {
		t.Fatal(err)
	}
	walkNodes(m, func(c *Node) {
		if c.Lock() != n.Lock() {
			t.Errorf("node %v has lock %v", c, c.Lock())
		}
	})
}

func TestDescendantLockBlocksRoot(t *testing.T) {
	r := MustFromPlain(map[string]any{"child": map[string]any{"grandchild": map[string]any{}}}, WithLocking(true))
	d, err := r.ResolveNode("child/grandchild", false)
	if err != nil {
		t.Fatal(err)
	}
	_, release := d.Acquire(context.Background())
	acquired := make(chan struct{})
	go func() {
		_, rr := r.Acquire(context.Background())
		close(acquired)
		rr()
	}()
	select {
	case <-acquired:
		t.Fatal("root acquired while a descendant holds the lock")
	case <-time.After(50 * time.Millisecond):
	}
	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("root never acquired")
	}
}
