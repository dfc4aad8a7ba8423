package merge

import (
	"fmt"

	"github.com/signadot/lattice/debug"
	"github.com/signadot/lattice/tree"
)

// How selects the candidate keys of a join.
type How int

const (
	Inner How = iota
	Left
	Right
	Outer
)

func ParseHow(v string) (How, error) {
	h, ok := map[string]How{
		"inner": Inner,
		"left":  Left,
		"right": Right,
		"outer": Outer,
	}[v]
	if ok {
		return h, nil
	}
	return 0, fmt.Errorf("%w: unsupported how %q", ErrJoinConfig, v)
}

func (h How) String() string {
	d, err := h.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (h How) MarshalText() ([]byte, error) {
	switch h {
	case Inner:
		return []byte("inner"), nil
	case Left:
		return []byte("left"), nil
	case Right:
		return []byte("right"), nil
	case Outer:
		return []byte("outer"), nil
	default:
		return nil, fmt.Errorf("%w: %d is not a join kind", ErrJoinConfig, h)
	}
}

func (h *How) UnmarshalText(d []byte) error {
	ph, err := ParseHow(string(d))
	if err != nil {
		return err
	}
	*h = ph
	return nil
}

// MergeFunc combines a field present in both the left and the right row
// of a join.
type MergeFunc func(left, right any) (any, error)

// Pair keeps both values as a two element sequence. It is the default.
func Pair(left, right any) (any, error) {
	return []any{left, right}, nil
}

func TakeLeft(left, _ any) (any, error) {
	return left, nil
}

func TakeRight(_, right any) (any, error) {
	return right, nil
}

// ParseMerge returns the built in MergeFunc named v.
func ParseMerge(v string) (MergeFunc, error) {
	switch v {
	case "pair", "":
		return Pair, nil
	case "left", "first":
		return TakeLeft, nil
	case "right", "last":
		return TakeRight, nil
	}
	return nil, fmt.Errorf("%w: unsupported merge strategy %q", ErrJoinConfig, v)
}

type joinOpts struct {
	merge MergeFunc
}

type JoinOption func(*joinOpts)

// WithMerge sets the strategy for fields present in both rows.
func WithMerge(f MergeFunc) JoinOption {
	return func(o *joinOpts) { o.merge = f }
}

// Join treats the child nodes of l and r as rows keyed by their key, and
// their leaf entries as columns. Each candidate key selected by how yields
// a row holding every column of both schemas: missing columns are nil and
// columns present in both rows are combined with the merge strategy.
func Join(l, r *tree.Node, how How, opts ...JoinOption) (*tree.Node, error) {
	o := &joinOpts{merge: Pair}
	for _, opt := range opts {
		opt(o)
	}
	if o.merge == nil {
		return nil, fmt.Errorf("%w: nil merge strategy", ErrJoinConfig)
	}
	keys, err := candidates(l, r, how)
	if err != nil {
		return nil, err
	}
	schemaL, schemaR := schema(l), schema(r)
	if debug.Merge() {
		debug.Logf("join %s keys %v schemas %v %v\n", how, keys, schemaL, schemaR)
	}
	res := newResult(l)
	for _, k := range keys {
		row, err := joinRow(res, rowOf(l, k), rowOf(r, k), schemaL, schemaR, o.merge)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", k, err)
		}
		must(res.Put(k, row))
	}
	return res, nil
}

func candidates(l, r *tree.Node, how How) ([]any, error) {
	var keys []any
	switch how {
	case Inner:
		for k := range l.All() {
			if r.Has(k) {
				keys = append(keys, k)
			}
		}
	case Left:
		keys = l.Keys()
	case Right:
		keys = r.Keys()
	case Outer:
		keys = l.Keys()
		for k := range r.All() {
			if !l.Has(k) {
				keys = append(keys, k)
			}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported how %d", ErrJoinConfig, how)
	}
	return keys, nil
}

// schema returns the leaf keys of the child nodes of n, in order of first
// appearance.
func schema(n *tree.Node) []any {
	var res []any
	seen := map[any]bool{}
	for _, row := range n.Children() {
		for k, v := range row.All() {
			if _, ok := v.(*tree.Node); ok || seen[k] {
				continue
			}
			seen[k] = true
			res = append(res, k)
		}
	}
	return res
}

// rowOf returns the row under k, or nil when k is absent or holds a leaf.
func rowOf(n *tree.Node, k any) *tree.Node {
	v, _ := n.Lookup(k)
	row, _ := v.(*tree.Node)
	return row
}

func field(row *tree.Node, k any) (any, bool) {
	if row == nil {
		return nil, false
	}
	return row.Lookup(k)
}

func joinRow(res, lv, rv *tree.Node, schemaL, schemaR []any, merge MergeFunc) (*tree.Node, error) {
	row := newChild(res)
	for _, f := range schemaL {
		v, _ := field(lv, f)
		put(row, f, v)
	}
	for _, f := range schemaR {
		lval, lok := field(lv, f)
		rval, rok := field(rv, f)
		switch {
		case lok && rok:
			m, err := merge(tree.CloneValue(lval), tree.CloneValue(rval))
			if err != nil {
				return nil, fmt.Errorf("%w: field %v: %w", ErrJoinConfig, f, err)
			}
			if err := row.Put(f, m); err != nil {
				return nil, fmt.Errorf("%w: field %v: %w", ErrJoinConfig, f, err)
			}
		case rok:
			put(row, f, rval)
		case !row.Has(f):
			must(row.Put(f, nil))
		}
	}
	return row, nil
}
