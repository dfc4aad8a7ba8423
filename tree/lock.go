package tree

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/signadot/lattice/debug"
)

var lockIDs atomic.Uint64

// Lock is a reentrant lock shared by every node of a hierarchy. Ownership
// is carried by the context returned from Acquire: acquiring again with
// that context (or one derived from it) re-enters without blocking.
type Lock struct {
	mu sync.Mutex
	id uint64
}

// NewLock allocates a fresh lock context.
func NewLock() *Lock {
	return &Lock{id: lockIDs.Add(1)}
}

func (l *Lock) ID() uint64 { return l.id }

type ownerKey struct{ l *Lock }

type holding struct {
	released atomic.Bool
}

// Held reports whether ctx owns l.
func (l *Lock) Held(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	h, ok := ctx.Value(ownerKey{l}).(*holding)
	return ok && !h.released.Load()
}

// Acquire blocks until l is available unless ctx already owns it. The
// returned release func is safe to call more than once; only the first call
// has an effect. Re-entrant acquisitions release nothing.
func (l *Lock) Acquire(ctx context.Context) (context.Context, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	if l.Held(ctx) {
		return ctx, func() {}
	}
	l.mu.Lock()
	if debug.Lock() {
		debug.Logf("lock %d acquired\n", l.id)
	}
	h := &holding{}
	release := func() {
		if h.released.CompareAndSwap(false, true) {
			if debug.Lock() {
				debug.Logf("lock %d released\n", l.id)
			}
			l.mu.Unlock()
		}
	}
	return context.WithValue(ctx, ownerKey{l}, h), release
}

// acquireBoth acquires a and b in id order so that concurrent structural
// moves between the same two hierarchies cannot deadlock.
func acquireBoth(ctx context.Context, a, b *Lock) (context.Context, func()) {
	if a == nil && b == nil {
		return ctx, func() {}
	}
	if a == nil || a == b {
		return b.Acquire(ctx)
	}
	if b == nil {
		return a.Acquire(ctx)
	}
	if b.id < a.id {
		a, b = b, a
	}
	ctx, ra := a.Acquire(ctx)
	ctx, rb := b.Acquire(ctx)
	return ctx, func() {
		rb()
		ra()
	}
}

// propagateLock sets the lock of every node reachable from n, including
// nodes held inside sequence leaves.
func propagateLock(n *Node, l *Lock) {
	walkNodes(n, func(c *Node) {
		c.lock = l
	})
}

// walkNodes visits n and all nodes beneath it depth-first, pre-order.
func walkNodes(n *Node, f func(*Node)) {
	f(n)
	for _, e := range n.entries.list {
		eachNode(e.val, func(c *Node) {
			walkNodes(c, f)
		})
	}
}

// eachNode calls f on v if it is a node, or on each node directly held
// by v (recursively through nested sequences) if v is a sequence.
func eachNode(v any, f func(*Node)) {
	switch x := v.(type) {
	case *Node:
		f(x)
	case []any:
		for _, elt := range x {
			eachNode(elt, f)
		}
	}
}
