package tree

import (
	"iter"
	"slices"
)

// Leaves iterates every leaf beneath n depth-first in insertion order,
// with the keys leading to it. A sequence is a single leaf. The key slice
// is fresh for each leaf.
func (n *Node) Leaves() iter.Seq2[[]any, any] {
	return func(yield func([]any, any) bool) {
		n.leaves(nil, yield)
	}
}

func (n *Node) leaves(prefix []any, yield func([]any, any) bool) bool {
	for _, e := range n.entries.list {
		path := append(slices.Clip(prefix), e.key)
		if c, ok := e.val.(*Node); ok {
			if !c.leaves(path, yield) {
				return false
			}
			continue
		}
		if !yield(path, e.val) {
			return false
		}
	}
	return true
}

// LeafPaths is Leaves with keys joined by sep. An empty sep means n's
// separator.
func (n *Node) LeafPaths(sep string) iter.Seq2[string, any] {
	if sep == "" {
		sep = n.sep
	}
	return func(yield func(string, any) bool) {
		for keys, v := range n.Leaves() {
			if !yield(joinKeys(keys, sep), v) {
				return
			}
		}
	}
}

func joinKeys(keys []any, sep string) string {
	segs := make([]string, len(keys))
	for i, k := range keys {
		segs[i] = keyString(k)
	}
	return Join(segs, sep)
}

func (n *Node) checkWritable() error {
	var frozen *Node
	walkNodes(n, func(c *Node) {
		if frozen == nil && c.frozen {
			frozen = c
		}
	})
	if frozen != nil {
		return deniedErr(frozen)
	}
	return nil
}

// Transform replaces every leaf beneath n with fn applied to it. A result
// which is a mapping is promoted as on assignment.
func (n *Node) Transform(fn func(any) any) error {
	if err := n.checkWritable(); err != nil {
		return err
	}
	var ws []write
	if err := n.transform(fn, &ws); err != nil {
		return err
	}
	seen := map[*Node]bool{}
	for _, w := range ws {
		var dup *Node
		eachNode(w.val, func(c *Node) {
			if seen[c] {
				dup = c
			}
			seen[c] = true
		})
		if dup != nil {
			return structuralErr("node %q returned for more than one leaf", dup.Path())
		}
	}
	for _, w := range ws {
		w.n.put(w.key, w.val)
	}
	return nil
}

// write is a prepared assignment, held back until every result of a
// Transform has been prepared without error.
type write struct {
	n        *Node
	key, val any
}

func (n *Node) transform(fn func(any) any, ws *[]write) error {
	for _, e := range n.entries.list {
		if c, ok := e.val.(*Node); ok {
			if err := c.transform(fn, ws); err != nil {
				return err
			}
			continue
		}
		v, err := n.prepare(e.key, fn(e.val))
		if err != nil {
			return err
		}
		*ws = append(*ws, write{n: n, key: e.key, val: v})
	}
	return nil
}

// Filter removes every leaf beneath n for which keep returns false.
// Branches left empty are kept; see Purge.
func (n *Node) Filter(keep func(any) bool) error {
	if err := n.checkWritable(); err != nil {
		return err
	}
	n.filter(keep)
	return nil
}

func (n *Node) filter(keep func(any) bool) {
	for _, e := range slices.Clone(n.entries.list) {
		if c, ok := e.val.(*Node); ok {
			c.filter(keep)
			continue
		}
		if !keep(e.val) {
			n.entries.del(e.key)
			orphan(e.val)
		}
	}
}

// SortByKey reorders the entries of n by CompareKeys. With recursive set,
// every node beneath n is sorted too.
func (n *Node) SortByKey(recursive bool) error {
	if !recursive {
		return n.SortFunc(CompareKeys)
	}
	if err := n.checkWritable(); err != nil {
		return err
	}
	walkNodes(n, func(c *Node) {
		c.entries.sortFunc(CompareKeys)
	})
	return nil
}

// SortFunc stably reorders the entries of n by key.
func (n *Node) SortFunc(cmp func(a, b any) int) error {
	if n.frozen {
		return deniedErr(n)
	}
	n.entries.sortFunc(cmp)
	return nil
}

// Children iterates the direct child nodes of n.
func (n *Node) Children() iter.Seq2[any, *Node] {
	return func(yield func(any, *Node) bool) {
		for _, e := range n.entries.list {
			c, ok := e.val.(*Node)
			if !ok {
				continue
			}
			if !yield(e.key, c) {
				return
			}
		}
	}
}
