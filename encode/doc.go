// Package encode encodes trees as YAML, JSON or an indented tree view.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//
//	// JSON, keys in entry order
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
//	// colored tree view
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.TreeFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/lattice/tree - the tree data model
//   - github.com/signadot/lattice/parse - decode documents into trees
package encode
