// Package format names the document formats understood by lattice.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.TreeFormat))
//
// YAML and JSON can be parsed and encoded; the tree view is output only.
//
// # Related Packages
//
//   - github.com/signadot/lattice/parse - decode documents into trees
//   - github.com/signadot/lattice/encode - encode trees
package format
