package merge

import (
	"fmt"

	"github.com/signadot/lattice/tree"
)

// Op names one of the set operations.
type Op int

const (
	OpUnion Op = iota
	OpIntersect
	OpDifference
	OpSymDiff
)

func ParseOp(v string) (Op, error) {
	op, ok := map[string]Op{
		"union":      OpUnion,
		"|":          OpUnion,
		"intersect":  OpIntersect,
		"&":          OpIntersect,
		"difference": OpDifference,
		"diff":       OpDifference,
		"-":          OpDifference,
		"symdiff":    OpSymDiff,
		"^":          OpSymDiff,
	}[v]
	if ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadOp, v)
}

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersect:
		return "intersect"
	case OpDifference:
		return "difference"
	case OpSymDiff:
		return "symdiff"
	}
	return fmt.Sprintf("<op %d>", int(op))
}

// Apply runs op on l and r.
func Apply(op Op, l, r *tree.Node) (*tree.Node, error) {
	switch op {
	case OpUnion:
		return Union(l, r), nil
	case OpIntersect:
		return Intersect(l, r), nil
	case OpDifference:
		return Difference(l, r), nil
	case OpSymDiff:
		return SymmetricDifference(l, r), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrBadOp, op)
}
