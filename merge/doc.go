// Package merge implements set algebra and joins over trees.
//
// # Usage
//
//	u := merge.Union(l, r)      // right biased deep union
//	i := merge.Intersect(l, r)  // keys on both sides
//	d := merge.Difference(l, r) // keys only in l, not recursive
//
//	rows, err := merge.Join(users, scores, merge.Left, merge.WithMerge(merge.TakeRight))
//
// Every operation returns a new tree; operands are never modified and the
// result never aliases their values. Callers sharing operands across
// goroutines should hold the operands' locks, see tree.Node.With.
//
// # Related Packages
//
//   - github.com/signadot/lattice/tree - the tree data model
package merge
