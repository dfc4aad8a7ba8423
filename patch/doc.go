// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to trees.
//
// # Usage
//
//	res, err := patch.ApplyJSON(node, []byte(`[{"op": "replace", "path": "/a", "value": 2}]`))
//	res, err := patch.Merge(node, []byte(`{"a": null, "b": {"c": 1}}`))
//
//	// express a structural diff as a JSON Patch
//	ops, err := patch.FromChanges(libdiff.Diff(from, to))
//
// Patches go through JSON, so keys which are not strings come back as
// strings.
//
// # Related Packages
//
//   - github.com/signadot/lattice/libdiff - structural diffs
//   - github.com/signadot/lattice/encode - JSON encoding of trees
package patch
