package tree

import "sort"

// Merge combines multiple provider forests into a single tree. Roots are
// concatenated in the order the forests are given, then every sibling list
// is sorted recursively with cmp. Nil forests are skipped.
//
// Merge is pure: it never fails and never modifies its inputs' node
// structs, though the result shares the input nodes (providers hand over
// ownership of the forests they return).
func Merge(cmp CompareFunc, forests ...*Tree) *Tree {
	merged := &Tree{}
	for _, f := range forests {
		if f == nil {
			continue
		}
		merged.Roots = append(merged.Roots, f.Roots...)
	}
	sortNodes(merged.Roots, cmp)
	return merged
}

func sortNodes(nodes []*Node, cmp CompareFunc) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return cmp(nodes[i], nodes[j]) < 0
	})
	for _, n := range nodes {
		sortNodes(n.Children, cmp)
	}
}
