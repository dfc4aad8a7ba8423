package tree

import (
	"context"
	"iter"
	"strconv"
	"strings"
)

// Node is a labeled, insertion ordered mapping from keys to values. A value
// is either a leaf (anything which is not a *Node) or a child *Node.
//
// Every non-root node n satisfies n.Parent().Lookup(n.Key()) == n, and all
// nodes of a connected hierarchy share the same *Lock (or none). A node
// promoted inside a sequence leaf has no parent; holder and heldAt name the
// entry holding that sequence.
type Node struct {
	key     any
	parent  *Node
	holder  *Node
	heldAt  any
	entries entries
	sep     string
	lazy    bool
	lock    *Lock
	frozen  bool
}

// New creates an empty root node.
func New(opts ...Option) *Node {
	o := makeOpts(opts...)
	n := &Node{
		key:  o.key,
		sep:  o.sep,
		lazy: o.lazy,
	}
	if o.locking {
		n.lock = NewLock()
	}
	return n
}

// newChild creates an empty node inheriting sep, lazy creation and lock
// from n. It is not inserted.
func (n *Node) newChild(key any) *Node {
	return &Node{
		key:  key,
		sep:  n.sep,
		lazy: n.lazy,
		lock: n.lock,
	}
}

func (n *Node) Key() any { return n.key }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) IsRoot() bool { return n.parent == nil }
func (n *Node) Sep() string { return n.sep }
func (n *Node) LazyCreate() bool { return n.lazy }
func (n *Node) Frozen() bool { return n.frozen }
func (n *Node) Lock() *Lock { return n.lock }
func (n *Node) Len() int { return n.entries.len() }
func (n *Node) SetLazyCreate(v bool) { n.lazy = v }

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Path returns the separator joined keys from the root to n. The root's
// path is "".
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	prefix := n.parent.Path()
	if prefix == "" {
		return keyString(n.key)
	}
	return prefix + n.sep + keyString(n.key)
}

// Keys returns the keys of n in insertion order.
func (n *Node) Keys() []any {
	res := make([]any, len(n.entries.list))
	for i := range n.entries.list {
		res[i] = n.entries.list[i].key
	}
	return res
}

// Values returns the values of n in insertion order.
func (n *Node) Values() []any {
	res := make([]any, len(n.entries.list))
	for i := range n.entries.list {
		res[i] = n.entries.list[i].val
	}
	return res
}

// All iterates the entries of n in insertion order. Mutating n during
// iteration is not supported.
func (n *Node) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, e := range n.entries.list {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Has reports whether key is a direct entry of n. Paths are not resolved.
func (n *Node) Has(key any) bool {
	if checkKey(key) != nil {
		return false
	}
	_, ok := n.entries.get(key)
	return ok
}

// Lookup returns the direct entry under key without path resolution or lazy
// creation.
func (n *Node) Lookup(key any) (any, bool) {
	if checkKey(key) != nil {
		return nil, false
	}
	return n.entries.get(key)
}

func (n *Node) pathKey(key any) (string, bool) {
	s, ok := key.(string)
	if !ok || !strings.Contains(s, n.sep) {
		return "", false
	}
	return s, true
}

// Get returns the value under key. A string key containing the separator
// is resolved as a path. When lazy creation is on and n is not frozen,
// missing entries are created as empty nodes.
func (n *Node) Get(key any) (any, error) {
	if p, ok := n.pathKey(key); ok {
		return n.Resolve(p, n.lazy)
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if s, ok := key.(string); ok {
		if _, v, ok := n.lookupSeg(s); ok {
			return v, nil
		}
	} else if v, ok := n.entries.get(key); ok {
		return v, nil
	}
	if !n.lazy || n.frozen {
		return nil, pathNotFound(keyString(key), keyString(key))
	}
	child := n.newChild(key)
	n.entries.set(key, child)
	child.parent = n
	return child, nil
}

// Node is Get for entries which must be subtrees.
func (n *Node) Node(key any) (*Node, error) {
	v, err := n.Get(key)
	if err != nil {
		return nil, err
	}
	return asNode(key, v)
}

func asNode(key, v any) (*Node, error) {
	c, ok := v.(*Node)
	if !ok {
		k := keyString(key)
		return nil, &PathError{Path: k, Segment: k, Err: ErrNotANode}
	}
	return c, nil
}

// Set stores v under key. A string key containing the separator is a path
// write (see SetPath). Plain mappings are promoted to nodes, a parentless
// *Node is attached and a *Node which already has a parent is rejected.
func (n *Node) Set(key any, v any) error {
	if p, ok := n.pathKey(key); ok {
		return n.SetPath(p, v)
	}
	return n.Put(key, v)
}

// Put is Set without path resolution: key is always a direct entry of n.
func (n *Node) Put(key any, v any) error {
	if n.frozen {
		return deniedErr(n)
	}
	if err := checkKey(key); err != nil {
		return err
	}
	pv, err := n.prepare(key, v)
	if err != nil {
		return err
	}
	n.put(key, pv)
	return nil
}

// Delete removes key (or the path it names) from n.
func (n *Node) Delete(key any) error {
	if p, ok := n.pathKey(key); ok {
		return n.DeletePath(p)
	}
	return n.Remove(key)
}

// Remove is Delete without path resolution.
func (n *Node) Remove(key any) error {
	if n.frozen {
		return deniedErr(n)
	}
	if err := checkKey(key); err != nil {
		return err
	}
	old, ok := n.entries.del(key)
	if !ok {
		return pathNotFound(keyString(key), keyString(key))
	}
	orphan(old)
	return nil
}

// put inserts an already prepared value, orphaning any replaced subtree
// and binding a *Node value (or the nodes of a sequence) to n.
func (n *Node) put(key, v any) {
	if old, ok := n.entries.get(key); ok && !sameNode(old, v) {
		orphan(old)
	}
	switch x := v.(type) {
	case *Node:
		x.key = key
		x.parent = n
		if x.lock != n.lock {
			propagateLock(x, n.lock)
		}
	case []any:
		eachNode(x, func(c *Node) {
			c.holder, c.heldAt = n, key
		})
	}
	n.entries.set(key, v)
}

// sameNode reports whether b is the node a. Sequences are never compared.
func sameNode(a, b any) bool {
	c, ok := b.(*Node)
	return ok && a == any(c)
}

func orphan(v any) {
	switch x := v.(type) {
	case *Node:
		x.parent = nil
	case []any:
		eachNode(x, func(c *Node) {
			c.holder, c.heldAt = nil, nil
		})
	}
}

// owner is the node n hangs from: its parent, or the holder of the
// sequence n is an element of.
func (n *Node) owner() *Node {
	if n.parent != nil {
		return n.parent
	}
	return n.holder
}

// isAncestorOf reports whether n is above m, following sequence holders
// as well as parents.
func (n *Node) isAncestorOf(m *Node) bool {
	for p := m.owner(); p != nil; p = p.owner() {
		if p == n {
			return true
		}
	}
	return false
}

// Acquire acquires the lock shared by n's hierarchy. The returned context
// marks the caller as owner so that nested Acquire calls on any node sharing
// the lock re-enter instead of blocking. The release func must be called
// once; extra calls are ignored. Nodes without locking return ctx and a
// no-op release.
func (n *Node) Acquire(ctx context.Context) (context.Context, func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	if n.lock == nil {
		return ctx, func() {}
	}
	return n.lock.Acquire(ctx)
}

// With runs fn holding n's lock. The lock is released on every exit path,
// including panics.
func (n *Node) With(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, release := n.Acquire(ctx)
	defer release()
	return fn(ctx)
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return sprint(k)
}
