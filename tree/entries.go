package tree

import (
	"fmt"
	"slices"
)

type entry struct {
	key any
	val any
}

// entries is an insertion ordered mapping. index maps a key to its
// position in list.
type entries struct {
	list  []entry
	index map[any]int
}

func (e *entries) len() int {
	return len(e.list)
}

func (e *entries) get(k any) (any, bool) {
	i, ok := e.index[k]
	if !ok {
		return nil, false
	}
	return e.list[i].val, true
}

func (e *entries) set(k, v any) {
	if i, ok := e.index[k]; ok {
		e.list[i].val = v
		return
	}
	if e.index == nil {
		e.index = map[any]int{}
	}
	e.index[k] = len(e.list)
	e.list = append(e.list, entry{key: k, val: v})
}

func (e *entries) del(k any) (any, bool) {
	i, ok := e.index[k]
	if !ok {
		return nil, false
	}
	v := e.list[i].val
	e.list = slices.Delete(e.list, i, i+1)
	delete(e.index, k)
	for j := i; j < len(e.list); j++ {
		e.index[e.list[j].key] = j
	}
	return v, true
}

func (e *entries) sortFunc(cmp func(a, b any) int) {
	slices.SortStableFunc(e.list, func(a, b entry) int {
		return cmp(a.key, b.key)
	})
	for i := range e.list {
		e.index[e.list[i].key] = i
	}
}

func checkKey(k any) error {
	if k == nil {
		return fmt.Errorf("%w: nil", ErrInvalidKey)
	}
	if _, ok := k.(*Node); ok {
		return fmt.Errorf("%w: node used as key", ErrInvalidKey)
	}
	if !hashable(k) {
		return fmt.Errorf("%w: %T is not hashable", ErrInvalidKey, k)
	}
	return nil
}

// hashable reports whether k can index a map. A comparable struct may
// still carry an unhashable value in an interface field.
func hashable(k any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	m := map[any]struct{}{}
	m[k] = struct{}{}
	return len(m) == 1
}
