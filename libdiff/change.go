package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/lattice/tree"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Modified
	// Moved is a key present on both sides at a different position. Its
	// value may have changed too.
	Moved
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Modified:
		return "~"
	case Moved:
		return ">"
	}
	return "?"
}

// Change is one difference between two trees. Path holds the keys from
// the root to the changed entry. From is unset for Added and To is unset
// for Removed.
type Change struct {
	Path []any
	Kind Kind
	From any
	To   any
	// Text is a character level diff of From and To when both are
	// strings, with deletions as [-x-] and insertions as {+x+}.
	Text string
}

// PathString joins the keys of c.Path with sep.
func (c *Change) PathString(sep string) string {
	segs := make([]string, len(c.Path))
	for i, k := range c.Path {
		segs[i] = fmt.Sprint(k)
	}
	return tree.Join(segs, sep)
}

func (c *Change) String() string {
	p := c.PathString(tree.DefaultSep)
	switch c.Kind {
	case Added:
		return fmt.Sprintf("%s %s: %s", c.Kind, p, valueString(c.To))
	case Removed:
		return fmt.Sprintf("%s %s: %s", c.Kind, p, valueString(c.From))
	}
	if c.Text != "" {
		return fmt.Sprintf("%s %s: %s", c.Kind, p, c.Text)
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Kind, p, valueString(c.From), valueString(c.To))
}

func valueString(v any) string {
	if n, ok := v.(*tree.Node); ok {
		return n.String()
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

// Format renders changes one per line.
func Format(changes []Change) string {
	buf := &strings.Builder{}
	for i := range changes {
		buf.WriteString(changes[i].String())
		buf.WriteByte('\n')
	}
	return buf.String()
}
