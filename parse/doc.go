// Package parse decodes YAML and JSON documents into trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte("server:\n  port: 8080\n"))
//
//	// JSON, validated strictly
//	node, err := parse.Parse(data, parse.ParseJSON())
//
//	// a custom separator on the resulting tree
//	node, err := parse.Parse(data, parse.ParseTreeOptions(tree.WithSep(".")))
//
// Mapping key order is preserved. Integers which fit are decoded as int,
// see Normalizer.
//
// # Related Packages
//
//   - github.com/signadot/lattice/tree - the tree data model
//   - github.com/signadot/lattice/encode - encode trees
package parse
