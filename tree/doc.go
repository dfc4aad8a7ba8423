// Package tree provides Node, an insertion ordered, dictionary-like tree
// which can be navigated by key, by attribute name or by separator
// delimited path.
//
// # Usage
//
//	n := tree.New(tree.WithLazyCreate(true))
//	err := n.Set("a/b/c", 1)
//	v, err := n.Get("a/b/c")
//
//	// build from plain data
//	n, err := tree.FromPlain(map[string]any{"settings": map[string]any{"port": 8080}})
//
// # Paths
//
// A string key containing the node's separator (default "/") is resolved
// segment by segment. With lazy creation on, missing segments are created
// as empty nodes on both reads and writes, unless the tree is frozen.
//
// # Structure
//
// Every non-root node has exactly one parent, and Detach, AttachTo,
// Transplant, Purge and Freeze keep that invariant. Plain mappings assigned
// into a tree are promoted to nodes; mappings held inside a sequence are
// promoted to parentless nodes keyed by their index.
//
// # Locking
//
// A hierarchy created WithLocking(true) shares one reentrant *Lock.
// Ownership is carried by the context.Context returned from Acquire; nested
// acquisitions with that context do not block.
//
// # Related Packages
//
//   - github.com/signadot/lattice/merge - set algebra and joins over trees
//   - github.com/signadot/lattice/parse - decode YAML and JSON into trees
//   - github.com/signadot/lattice/encode - encode trees
package tree
