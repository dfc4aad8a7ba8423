package tree

import (
	"context"
	"slices"

	"github.com/signadot/lattice/debug"
)

// Detach removes n from its parent and makes it a root. If the hierarchy
// is locked, the detached subtree gets a fresh lock of its own.
func (n *Node) Detach() (*Node, error) {
	if n.holder != nil {
		return nil, structuralErr("cannot detach a sequence element")
	}
	if n.parent == nil {
		return nil, structuralErr("cannot detach a root")
	}
	if n.parent.frozen {
		return nil, deniedErr(n.parent)
	}
	n.detach()
	return n, nil
}

func (n *Node) detach() {
	if debug.Hierarchy() {
		debug.Logf("detach %q\n", n.Path())
	}
	n.parent.entries.del(n.key)
	n.parent = nil
	if n.lock != nil {
		propagateLock(n, NewLock())
	}
}

// AttachTo inserts the root n under key in parent, replacing any existing
// value. A nil key attaches n under its own key. The subtree adopts
// parent's lock.
func (n *Node) AttachTo(parent *Node, key any) error {
	if n.parent != nil {
		return structuralErr("node %q already has a parent", n.Path())
	}
	if n.holder != nil {
		return structuralErr("node is held by a sequence in %q", n.holder.Path())
	}
	if parent.frozen {
		return frozenTargetErr(parent)
	}
	if key == nil {
		key = n.key
	}
	if err := checkKey(key); err != nil {
		return err
	}
	if parent == n || n.isAncestorOf(parent) {
		return structuralErr("cannot attach a node beneath itself")
	}
	if debug.Hierarchy() {
		debug.Logf("attach %v under %q\n", key, parent.Path())
	}
	parent.put(key, n)
	return nil
}

// Transplant moves n from its current parent to key in parent. Every
// precondition is checked before anything moves, and the move happens
// while holding the locks of both hierarchies, so a reader holding either
// lock never observes n without a parent.
func (n *Node) Transplant(ctx context.Context, parent *Node, key any) error {
	if n.parent == nil {
		return structuralErr("cannot transplant a root")
	}
	if key == nil {
		key = n.key
	}
	if err := checkKey(key); err != nil {
		return err
	}
	_, release := acquireBoth(ctx, n.lock, parent.lock)
	defer release()
	if n.parent.frozen {
		return deniedErr(n.parent)
	}
	if parent.frozen {
		return frozenTargetErr(parent)
	}
	if parent == n || n.isAncestorOf(parent) {
		return structuralErr("cannot transplant %q beneath itself", n.Path())
	}
	if debug.Hierarchy() {
		debug.Logf("transplant %q to %v under %q\n", n.Path(), key, parent.Path())
	}
	n.parent.entries.del(n.key)
	n.parent = nil
	parent.put(key, n)
	return nil
}

// Purge removes branches which hold no leaf anywhere beneath them. n
// itself is never removed.
func (n *Node) Purge() error {
	if err := n.checkWritable(); err != nil {
		return err
	}
	n.purge()
	return nil
}

func (n *Node) purge() {
	for _, e := range slices.Clone(n.entries.list) {
		c, ok := e.val.(*Node)
		if !ok {
			continue
		}
		c.purge()
		if c.entries.len() == 0 {
			if debug.Hierarchy() {
				debug.Logf("purge %q\n", c.Path())
			}
			n.entries.del(e.key)
			c.parent = nil
		}
	}
}

// Freeze marks n and every node reachable from it as frozen. It cannot be
// undone.
func (n *Node) Freeze() {
	walkNodes(n, func(c *Node) {
		c.frozen = true
	})
}
