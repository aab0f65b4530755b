// Package tree defines the inventory tree model and the assembler that
// merges provider output into a single published snapshot.
//
// A Tree is a forest of Nodes. Each Node carries an opaque ID, a display
// title, a status, the name of the source that produced it, and an ordered
// list of children. Trees are built wholesale by Merge and are never
// mutated after publication: a refresh always produces a brand-new Tree
// value, so readers can hold a snapshot without synchronization.
//
// # Ordering
//
// Sibling order is defined by a CompareFunc, a total order over Nodes
// supplied by the caller. Merge applies the order recursively, so every
// published Tree is fully sorted at every depth. ByStatusThenTitle is the
// order used by the dashboard: problem nodes surface before healthy ones,
// ties break alphabetically.
//
// # Usage
//
//	merged := tree.Merge(tree.ByStatusThenTitle, dbForest, storageForest)
//	fmt.Println(merged.NodeCount())
package tree
