package encode

import (
	"fmt"
	"strconv"

	"github.com/signadot/lattice/tree"
	"github.com/xlab/treeprint"
)

// treeView renders node as an indented tree: one line per entry, nodes as
// branches and sequences as branches of their indexed elements.
func treeView(node *tree.Node, c *Colors) string {
	root := keyString(node.Key())
	if root == "" {
		root = "."
	}
	t := treeprint.NewWithRoot(root)
	addEntries(t, node, c)
	return t.String()
}

func addEntries(t treeprint.Tree, n *tree.Node, c *Colors) {
	for k, v := range n.All() {
		addValue(t, keyString(k), v, c)
	}
}

func addValue(t treeprint.Tree, label string, v any, c *Colors) {
	if c != nil {
		label = c.Color(KeyColor, label)
	}
	switch x := v.(type) {
	case *tree.Node:
		addEntries(t.AddBranch(label), x, c)
	case []any:
		b := t.AddBranch(label)
		for i := range x {
			addValue(b, "["+strconv.Itoa(i)+"]", x[i], c)
		}
	default:
		t.AddNode(label + ": " + leafString(v, c))
	}
}

func leafString(v any, c *Colors) string {
	var (
		s string
		a ColorAttr
	)
	switch x := v.(type) {
	case nil:
		s, a = "null", NullColor
	case string:
		s, a = strconv.Quote(x), StringColor
	case bool:
		s, a = strconv.FormatBool(x), BoolColor
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		s, a = fmt.Sprint(x), NumberColor
	default:
		s, a = fmt.Sprint(x), StringColor
	}
	if c == nil {
		return s
	}
	return c.Color(a, s)
}
