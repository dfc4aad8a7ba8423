package merge

import (
	"github.com/signadot/lattice/debug"
	"github.com/signadot/lattice/tree"
)

// newResult creates an empty root configured like l. A locked l gives the
// result a fresh lock of its own.
func newResult(l *tree.Node) *tree.Node {
	return tree.New(
		tree.WithKey(l.Key()),
		tree.WithSep(l.Sep()),
		tree.WithLazyCreate(l.LazyCreate()),
		tree.WithLocking(l.Lock() != nil),
	)
}

func newChild(res *tree.Node) *tree.Node {
	return tree.New(tree.WithSep(res.Sep()), tree.WithLazyCreate(res.LazyCreate()))
}

// put stores a copy of v in res. Values coming from an operand are never
// aliased by the result.
func put(res *tree.Node, k, v any) {
	must(res.Put(k, tree.CloneValue(v)))
}

// must panics on errors which cannot happen when writing keys taken from
// a valid node into a fresh, unfrozen result.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func both(lv, rv any) (*tree.Node, *tree.Node, bool) {
	ln, lok := lv.(*tree.Node)
	rn, rok := rv.(*tree.Node)
	return ln, rn, lok && rok
}

// Union returns the deep union of l and r. For keys on both sides, nodes
// are merged recursively and otherwise the value from r wins.
func Union(l, r *tree.Node) *tree.Node {
	res := newResult(l)
	union(res, l, r)
	if debug.Merge() {
		debug.Logf("union %v | %v = %v\n", l, r, res)
	}
	return res
}

func union(res, l, r *tree.Node) {
	for k, lv := range l.All() {
		rv, ok := r.Lookup(k)
		if !ok {
			put(res, k, lv)
			continue
		}
		if ln, rn, ok := both(lv, rv); ok {
			c := newChild(res)
			union(c, ln, rn)
			must(res.Put(k, c))
			continue
		}
		put(res, k, rv)
	}
	for k, rv := range r.All() {
		if !l.Has(k) {
			put(res, k, rv)
		}
	}
}

// Intersect returns the keys present in both l and r. Nodes on both sides
// are intersected recursively; otherwise the value from r is kept.
func Intersect(l, r *tree.Node) *tree.Node {
	res := newResult(l)
	intersect(res, l, r)
	if debug.Merge() {
		debug.Logf("intersect %v & %v = %v\n", l, r, res)
	}
	return res
}

func intersect(res, l, r *tree.Node) {
	for k, lv := range l.All() {
		rv, ok := r.Lookup(k)
		if !ok {
			continue
		}
		if ln, rn, ok := both(lv, rv); ok {
			c := newChild(res)
			intersect(c, ln, rn)
			must(res.Put(k, c))
			continue
		}
		put(res, k, rv)
	}
}

// Difference returns the entries of l whose keys are absent from r. A key
// present on both sides is excluded regardless of its values; Difference
// does not recurse.
func Difference(l, r *tree.Node) *tree.Node {
	res := newResult(l)
	exclude(res, l, r)
	if debug.Merge() {
		debug.Logf("difference %v - %v = %v\n", l, r, res)
	}
	return res
}

// SymmetricDifference returns the entries whose keys are on exactly one
// side: first those of l, then those of r.
func SymmetricDifference(l, r *tree.Node) *tree.Node {
	res := newResult(l)
	exclude(res, l, r)
	exclude(res, r, l)
	if debug.Merge() {
		debug.Logf("symmetric difference %v ^ %v = %v\n", l, r, res)
	}
	return res
}

func exclude(res, l, r *tree.Node) {
	for k, lv := range l.All() {
		if !r.Has(k) {
			put(res, k, lv)
		}
	}
}
