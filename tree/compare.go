package tree

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Clone returns a deep copy of n as a new, unfrozen root. The copy gets a
// fresh lock when n's hierarchy is locked.
func (n *Node) Clone() *Node {
	var l *Lock
	if n.lock != nil {
		l = NewLock()
	}
	return n.cloneInto(n.key, l)
}

func (n *Node) cloneInto(key any, l *Lock) *Node {
	res := &Node{
		key:  key,
		sep:  n.sep,
		lazy: n.lazy,
		lock: l,
	}
	for _, e := range n.entries.list {
		res.put(e.key, cloneValue(e.val, l))
	}
	return res
}

// CloneValue deep copies a node value. Nodes are copied as new roots and
// sequences are copied element wise; other leaves are returned as is.
func CloneValue(v any) any {
	if c, ok := v.(*Node); ok {
		return c.Clone()
	}
	return cloneValue(v, nil)
}

func cloneValue(v any, l *Lock) any {
	switch x := v.(type) {
	case *Node:
		return x.cloneInto(x.key, l)
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = cloneValue(x[i], l)
		}
		return res
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && !rv.IsNil() {
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface()
	}
	return v
}

// Equal reports whether a and b hold the same keys mapped to equal values.
// Entry order is not significant; leaves are compared with
// reflect.DeepEqual.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.entries.len() != b.entries.len() {
		return false
	}
	for _, e := range a.entries.list {
		bv, ok := b.entries.get(e.key)
		if !ok {
			return false
		}
		if !ValuesEqual(e.val, bv) {
			return false
		}
	}
	return true
}

// ValuesEqual compares two node values the way Equal compares entries.
func ValuesEqual(a, b any) bool {
	switch x := a.(type) {
	case *Node:
		y, ok := b.(*Node)
		return ok && Equal(x, y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !ValuesEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	if _, ok := b.(*Node); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// CompareKeys orders keys: numbers first (numerically), then strings, then
// everything else by its printed form.
func CompareKeys(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		return cmp.Compare(toFloat(a), toFloat(b))
	case 1:
		return strings.Compare(a.(string), b.(string))
	}
	return strings.Compare(sprint(a), sprint(b))
}

func keyRank(k any) int {
	switch reflect.ValueOf(k).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return 0
	case reflect.String:
		if _, ok := k.(string); ok {
			return 1
		}
	}
	return 2
}

func toFloat(k any) float64 {
	rv := reflect.ValueOf(k)
	switch {
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	}
	return rv.Float()
}

// String renders n on a single line. It is meant for logs and error
// messages, not for serialization.
func (n *Node) String() string {
	buf := &strings.Builder{}
	writeValue(buf, n)
	return buf.String()
}

func writeValue(buf *strings.Builder, v any) {
	switch x := v.(type) {
	case *Node:
		buf.WriteByte('{')
		for i, e := range x.entries.list {
			if i != 0 {
				buf.WriteString(", ")
			}
			writeScalar(buf, e.key)
			buf.WriteString(": ")
			writeValue(buf, e.val)
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i := range x {
			if i != 0 {
				buf.WriteString(", ")
			}
			writeValue(buf, x[i])
		}
		buf.WriteByte(']')
	default:
		writeScalar(buf, v)
	}
}

func writeScalar(buf *strings.Builder, v any) {
	switch x := v.(type) {
	case string:
		buf.WriteString(strconv.Quote(x))
	case nil:
		buf.WriteString("null")
	default:
		fmt.Fprint(buf, x)
	}
}
