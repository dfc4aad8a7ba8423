package tree

import (
	"strconv"
	"strings"

	"github.com/signadot/lattice/debug"

	lru "github.com/hashicorp/golang-lru/v2"
)

type splitKey struct {
	sep, path string
}

const splitCacheSize = 4096

var splitCache *lru.Cache[splitKey, []string]

func init() {
	c, err := lru.New[splitKey, []string](splitCacheSize)
	if err != nil {
		panic(err)
	}
	splitCache = c
}

// Split splits path on sep. The empty path has no segments. The returned
// slice is shared and must not be modified.
func Split(path, sep string) []string {
	if path == "" {
		return nil
	}
	k := splitKey{sep: sep, path: path}
	if segs, ok := splitCache.Get(k); ok {
		return segs
	}
	segs := strings.Split(path, sep)
	splitCache.Add(k, segs)
	return segs
}

// Join is the inverse of Split.
func Join(segs []string, sep string) string {
	return strings.Join(segs, sep)
}

// lookupSeg finds the entry named by a path segment. A segment which is
// not a key itself but spells a decimal integer matches an int key.
func (n *Node) lookupSeg(seg string) (any, any, bool) {
	if v, ok := n.entries.get(seg); ok {
		return seg, v, true
	}
	if i, err := strconv.Atoi(seg); err == nil {
		if v, ok := n.entries.get(i); ok {
			return i, v, true
		}
	}
	return nil, nil, false
}

// Resolve walks path from n. Missing segments are created as empty nodes
// when create is set and the node being walked is not frozen; otherwise a
// *PathError naming the first missing segment is returned. The empty path
// resolves to n.
func (n *Node) Resolve(path string, create bool) (any, error) {
	segs := Split(path, n.sep)
	var cur any = n
	for i, seg := range segs {
		node, ok := cur.(*Node)
		if !ok {
			return nil, &PathError{Path: path, Segment: segs[i-1], Err: ErrNotANode}
		}
		_, v, ok := node.lookupSeg(seg)
		if !ok {
			if !create || node.frozen {
				return nil, pathNotFound(path, seg)
			}
			if debug.Path() {
				debug.Logf("lazily creating %q in %q\n", seg, path)
			}
			child := node.newChild(seg)
			node.put(seg, child)
			v = child
		}
		cur = v
	}
	return cur, nil
}

// ResolveNode is Resolve for paths which must name a subtree.
func (n *Node) ResolveNode(path string, create bool) (*Node, error) {
	v, err := n.Resolve(path, create)
	if err != nil {
		return nil, err
	}
	c, ok := v.(*Node)
	if !ok {
		segs := Split(path, n.sep)
		return nil, &PathError{Path: path, Segment: segs[len(segs)-1], Err: ErrNotANode}
	}
	return c, nil
}

// walkPlan validates a write to segs before anything is modified. It
// returns the deepest existing node on the way to the final segment and
// the index of the first segment that must be created.
func (n *Node) walkPlan(path string, segs []string, create bool) (*Node, int, error) {
	cur := n
	for i := 0; i < len(segs)-1; i++ {
		if cur.frozen {
			return nil, 0, deniedErr(cur)
		}
		_, v, ok := cur.lookupSeg(segs[i])
		if !ok {
			if !create {
				return nil, 0, pathNotFound(path, segs[i])
			}
			return cur, i, nil
		}
		next, ok := v.(*Node)
		if !ok {
			return nil, 0, &PathError{Path: path, Segment: segs[i], Err: ErrNotANode}
		}
		cur = next
	}
	if cur.frozen {
		return nil, 0, deniedErr(cur)
	}
	return cur, len(segs) - 1, nil
}

// SetPath stores v at path, creating missing intermediate nodes when lazy
// creation is on.
func (n *Node) SetPath(path string, v any) error {
	return n.setPath(path, v, n.lazy)
}

// ForceSetPath is SetPath with intermediate creation regardless of the
// lazy creation flag.
func (n *Node) ForceSetPath(path string, v any) error {
	return n.setPath(path, v, true)
}

func (n *Node) setPath(path string, v any, create bool) error {
	segs := Split(path, n.sep)
	if len(segs) == 0 {
		return pathNotFound(path, path)
	}
	cur, i, err := n.walkPlan(path, segs, create)
	if err != nil {
		return err
	}
	last := segs[len(segs)-1]
	key := any(last)
	if i == len(segs)-1 {
		if k, _, ok := cur.lookupSeg(last); ok {
			key = k
		}
	}
	pv, err := cur.prepare(key, v)
	if err != nil {
		return err
	}
	for ; i < len(segs)-1; i++ {
		if debug.Path() {
			debug.Logf("creating %q in %q\n", segs[i], path)
		}
		child := cur.newChild(segs[i])
		cur.put(segs[i], child)
		cur = child
	}
	cur.put(key, pv)
	return nil
}

// MakePath creates every missing node along path and returns the node it
// names.
func (n *Node) MakePath(path string) (*Node, error) {
	segs := Split(path, n.sep)
	if len(segs) == 0 {
		return n, nil
	}
	cur := n
	for _, seg := range segs {
		_, v, ok := cur.lookupSeg(seg)
		if !ok {
			if cur.frozen {
				return nil, deniedErr(cur)
			}
			child := cur.newChild(seg)
			cur.put(seg, child)
			cur = child
			continue
		}
		next, ok := v.(*Node)
		if !ok {
			return nil, &PathError{Path: path, Segment: seg, Err: ErrNotANode}
		}
		cur = next
	}
	return cur, nil
}

// DeletePath removes the entry named by path.
func (n *Node) DeletePath(path string) error {
	segs := Split(path, n.sep)
	if len(segs) == 0 {
		return pathNotFound(path, path)
	}
	cur, _, err := n.walkPlan(path, segs, false)
	if err != nil {
		return err
	}
	last := segs[len(segs)-1]
	key, _, ok := cur.lookupSeg(last)
	if !ok {
		return pathNotFound(path, last)
	}
	old, _ := cur.entries.del(key)
	orphan(old)
	return nil
}

// Attr resolves a single identifier without separator splitting. A
// missing name is created when lazy creation is on and n is not frozen,
// otherwise an *AttributeError is returned.
func (n *Node) Attr(name string) (any, error) {
	if v, ok := n.entries.get(name); ok {
		return v, nil
	}
	if !n.lazy || n.frozen {
		return nil, &AttributeError{Name: name}
	}
	child := n.newChild(name)
	n.put(name, child)
	return child, nil
}

// AttrNode is Attr for names which must hold a subtree.
func (n *Node) AttrNode(name string) (*Node, error) {
	v, err := n.Attr(name)
	if err != nil {
		return nil, err
	}
	return asNode(name, v)
}

// SetAttr stores v under name without separator splitting.
func (n *Node) SetAttr(name string, v any) error {
	if n.frozen {
		return deniedErr(n)
	}
	pv, err := n.prepare(name, v)
	if err != nil {
		return err
	}
	n.put(name, pv)
	return nil
}

// DelAttr removes name without separator splitting.
func (n *Node) DelAttr(name string) error {
	if n.frozen {
		return deniedErr(n)
	}
	old, ok := n.entries.del(name)
	if !ok {
		return &AttributeError{Name: name}
	}
	orphan(old)
	return nil
}
