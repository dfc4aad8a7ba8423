package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/lattice/debug"
	"github.com/signadot/lattice/tree"
)

var ErrConflict = errors.New("diff does not apply")

// Patch applies changes made by Diff to n in place. A Removed or Modified
// change whose From no longer matches the value in n is a conflict; no
// later change is applied.
func Patch(n *tree.Node, changes []Change) error {
	for i := range changes {
		c := &changes[i]
		if debug.Patch() {
			debug.Logf("apply %s\n", c)
		}
		if err := apply(n, c); err != nil {
			return fmt.Errorf("%s: %w", c.PathString(n.Sep()), err)
		}
	}
	return nil
}

func apply(n *tree.Node, c *Change) error {
	if len(c.Path) == 0 {
		return fmt.Errorf("%w: empty path", ErrConflict)
	}
	parent, err := parentOf(n, c.Path)
	if err != nil {
		return err
	}
	k := c.Path[len(c.Path)-1]
	cur, has := parent.Lookup(k)
	switch c.Kind {
	case Added:
		if has {
			return fmt.Errorf("%w: already present", ErrConflict)
		}
		return parent.Put(k, tree.CloneValue(c.To))
	case Removed:
		if !has || !tree.ValuesEqual(cur, c.From) {
			return fmt.Errorf("%w: removed value differs", ErrConflict)
		}
		return parent.Remove(k)
	case Modified:
		if !has || !tree.ValuesEqual(cur, c.From) {
			return fmt.Errorf("%w: modified value differs", ErrConflict)
		}
		return parent.Put(k, tree.CloneValue(c.To))
	case Moved:
		if !has {
			return fmt.Errorf("%w: moved key missing", ErrConflict)
		}
		if err := parent.Remove(k); err != nil {
			return err
		}
		return parent.Put(k, tree.CloneValue(c.To))
	}
	return fmt.Errorf("%w: unknown change kind %d", ErrConflict, c.Kind)
}

func parentOf(n *tree.Node, path []any) (*tree.Node, error) {
	cur := n
	for _, k := range path[:len(path)-1] {
		v, ok := cur.Lookup(k)
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrConflict, tree.ErrPathNotFound)
		}
		next, ok := v.(*tree.Node)
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrConflict, tree.ErrNotANode)
		}
		cur = next
	}
	return cur, nil
}
