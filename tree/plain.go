package tree

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
)

// Item is one entry of an ordered plain mapping.
type Item struct {
	Key   any
	Value any
}

// Map is an ordered plain mapping. It is the ordered counterpart of a Go
// map for FromPlain, ToMap, Flatten and the codecs.
type Map []Item

// Get returns the value of the first item with key k.
func (m Map) Get(k any) (any, bool) {
	for i := range m {
		if m[i].Key == k {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Normalizer rewrites values as they enter a tree through FromPlain, before
// they are classified as mapping, sequence or leaf.
type Normalizer interface {
	Normalize(v any) any
}

// NormalizerFunc adapts a func to a Normalizer.
type NormalizerFunc func(any) any

func (f NormalizerFunc) Normalize(v any) any { return f(v) }

// builder converts plain values into node values.
//
// With clone set, *Node values are deep copied instead of adopted.
type builder struct {
	norm  Normalizer
	clone bool
}

// FromPlain builds a tree from a mapping: a Map, any Go map (keys are
// sorted for determinism) or a *Node (deep copied).
func FromPlain(v any, opts ...Option) (*Node, error) {
	o := makeOpts(opts...)
	b := &builder{norm: o.normalizer, clone: true}
	if b.norm != nil {
		v = b.norm.Normalize(v)
	}
	items, ok := mapItems(v)
	if !ok {
		return nil, structuralErr("cannot build a tree from %T", v)
	}
	n := New(opts...)
	if err := b.fill(n, items); err != nil {
		return nil, err
	}
	return n, nil
}

// MustFromPlain is FromPlain which panics on error.
func MustFromPlain(v any, opts ...Option) *Node {
	n, err := FromPlain(v, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func (b *builder) fill(n *Node, items Map) error {
	for _, it := range items {
		if err := checkKey(it.Key); err != nil {
			return err
		}
		v, err := b.value(n, it.Key, it.Value)
		if err != nil {
			return err
		}
		n.put(it.Key, v)
	}
	return nil
}

// value converts v for storage under key in n.
func (b *builder) value(n *Node, key, v any) (any, error) {
	if b.norm != nil {
		v = b.norm.Normalize(v)
	}
	if c, ok := v.(*Node); ok {
		return b.adopt(n, key, c)
	}
	if items, ok := mapItems(v); ok {
		child := n.newChild(key)
		if err := b.fill(child, items); err != nil {
			return nil, err
		}
		return child, nil
	}
	if seq, ok := b.seq(v); ok {
		return b.elems(n, key, seq)
	}
	return v, nil
}

// adopt checks that c may be stored under key in n, directly or inside a
// sequence.
func (b *builder) adopt(n *Node, key any, c *Node) (any, error) {
	if b.clone {
		return c.cloneInto(c.key, n.lock), nil
	}
	if c.parent != nil {
		return nil, structuralErr("node %q already has a parent", c.Path())
	}
	// a node may stay at the entry already holding it, as when a sequence
	// is rewritten in place
	if c.holder != nil && (c.holder != n || c.heldAt != key) {
		return nil, structuralErr("node is held by a sequence in %q", c.holder.Path())
	}
	if c == n || c.isAncestorOf(n) {
		return nil, structuralErr("cannot make a node a descendant of itself")
	}
	return c, nil
}

// seq reports whether v is a sequence whose elements need conversion.
// Sequences of plain scalars are kept as they are.
func (b *builder) seq(v any) ([]any, bool) {
	if x, ok := v.([]any); ok {
		return x, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Map, reflect.Interface, reflect.Slice, reflect.Pointer:
	default:
		return nil, false
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}

// elems converts the elements of a sequence held by n. Mapping elements
// become parentless nodes keyed by their index which share n's lock.
func (b *builder) elems(n *Node, key any, seq []any) (any, error) {
	res := make([]any, len(seq))
	for i, elt := range seq {
		if b.norm != nil {
			elt = b.norm.Normalize(elt)
		}
		switch x := elt.(type) {
		case *Node:
			c, err := b.adopt(n, key, x)
			if err != nil {
				return nil, err
			}
			cn := c.(*Node)
			if cn.lock != n.lock {
				propagateLock(cn, n.lock)
			}
			res[i] = cn
			continue
		}
		if items, ok := mapItems(elt); ok {
			child := n.newChild(strconv.Itoa(i))
			if err := b.fill(child, items); err != nil {
				return nil, err
			}
			res[i] = child
			continue
		}
		if sub, ok := b.seq(elt); ok {
			v, err := b.elems(n, key, sub)
			if err != nil {
				return nil, err
			}
			res[i] = v
			continue
		}
		res[i] = elt
	}
	return res, nil
}

// prepare converts v for assignment under key in n. A parentless *Node is
// adopted as is and plain mappings are promoted. Assigning the node
// already stored under key is a no-op.
func (n *Node) prepare(key, v any) (any, error) {
	if cur, ok := n.entries.get(key); ok && sameNode(cur, v) {
		return v, nil
	}
	b := &builder{}
	return b.value(n, key, v)
}

// mapItems returns the items of a mapping value in iteration order.
func mapItems(v any) (Map, bool) {
	switch x := v.(type) {
	case Map:
		return x, true
	case *Node:
		return x.ToMap(), true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := make(Map, len(keys))
		for i, k := range keys {
			res[i] = Item{Key: k, Value: x[k]}
		}
		return res, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return CompareKeys(a.Interface(), b.Interface())
	})
	res := make(Map, len(keys))
	for i, k := range keys {
		res[i] = Item{Key: k.Interface(), Value: rv.MapIndex(k).Interface()}
	}
	return res, true
}

// ToPlain returns a deep copy of n as nested Go maps. Nodes inside
// sequences are converted as well.
func (n *Node) ToPlain() map[any]any {
	res := make(map[any]any, n.entries.len())
	for _, e := range n.entries.list {
		res[e.key] = plainValue(e.val, false)
	}
	return res
}

// ToMap is ToPlain preserving entry order.
func (n *Node) ToMap() Map {
	res := make(Map, n.entries.len())
	for i, e := range n.entries.list {
		res[i] = Item{Key: e.key, Value: plainValue(e.val, true)}
	}
	return res
}

func plainValue(v any, ordered bool) any {
	switch x := v.(type) {
	case *Node:
		if ordered {
			return x.ToMap()
		}
		return x.ToPlain()
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = plainValue(x[i], ordered)
		}
		return res
	}
	return v
}

func sprint(v any) string {
	return fmt.Sprint(v)
}
