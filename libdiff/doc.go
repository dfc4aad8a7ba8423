// Package libdiff computes and applies structural differences between
// trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	fmt.Print(libdiff.Format(changes))
//
//	// replay the changes on a copy of oldNode
//	err := libdiff.Patch(copyOfOld, changes)
//
// Keys are aligned with a sequence diff, so reordering is reported as
// Moved. String leaves carry a character level diff in Change.Text.
//
// # Related Packages
//
//   - github.com/signadot/lattice/tree - the tree data model
//   - github.com/signadot/lattice/patch - JSON Patch and merge patch
package libdiff
