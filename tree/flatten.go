package tree

import "strings"

// Flatten returns a single level mapping from sep joined key paths to the
// leaves beneath n, in depth-first order. Empty nodes are kept as an empty
// Map so that Unflatten restores them. An empty sep means n's separator.
func (n *Node) Flatten(sep string) Map {
	if sep == "" {
		sep = n.sep
	}
	var res Map
	n.flatten(nil, sep, &res)
	return res
}

func (n *Node) flatten(prefix []string, sep string, res *Map) {
	for _, e := range n.entries.list {
		path := append(prefix[:len(prefix):len(prefix)], keyString(e.key))
		c, ok := e.val.(*Node)
		switch {
		case !ok:
			*res = append(*res, Item{Key: Join(path, sep), Value: plainValue(e.val, true)})
		case c.entries.len() == 0:
			*res = append(*res, Item{Key: Join(path, sep), Value: Map{}})
		default:
			c.flatten(path, sep, res)
		}
	}
}

// Unflatten is the inverse of Flatten. Each key of flat is split on sep and
// the intermediate nodes are created as needed. Keys which are not strings
// are stored as is at the top level.
func Unflatten(flat Map, sep string, opts ...Option) (*Node, error) {
	n := New(opts...)
	if sep == "" {
		sep = n.sep
	}
	for _, it := range flat {
		s, ok := it.Key.(string)
		if !ok {
			if err := n.Set(it.Key, it.Value); err != nil {
				return nil, err
			}
			continue
		}
		segs := strings.Split(s, sep)
		cur := n
		for _, seg := range segs[:len(segs)-1] {
			v, ok := cur.entries.get(seg)
			if !ok {
				child := cur.newChild(seg)
				cur.put(seg, child)
				cur = child
				continue
			}
			next, ok := v.(*Node)
			if !ok {
				return nil, &PathError{Path: s, Segment: seg, Err: ErrNotANode}
			}
			cur = next
		}
		last := segs[len(segs)-1]
		v, err := cur.prepare(last, it.Value)
		if err != nil {
			return nil, err
		}
		cur.put(last, v)
	}
	return n, nil
}
