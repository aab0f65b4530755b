package tree_test

import (
	"testing"

	"treeboard/core/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(nodes []*tree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Title)
	}
	return out
}

func TestMerge_SortsRootsAcrossForests(t *testing.T) {
	a := &tree.Tree{Roots: []*tree.Node{{Title: "B"}, {Title: "A"}}}
	b := &tree.Tree{Roots: []*tree.Node{{Title: "D"}, {Title: "C"}}}

	merged := tree.Merge(tree.ByTitle, a, b)
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(merged.Roots))
}

func TestMerge_SortsChildrenRecursively(t *testing.T) {
	forest := &tree.Tree{Roots: []*tree.Node{
		{Title: "root", Children: []*tree.Node{
			{Title: "zeta", Children: []*tree.Node{{Title: "2"}, {Title: "1"}}},
			{Title: "alpha"},
		}},
	}}

	merged := tree.Merge(tree.ByTitle, forest)
	require.Len(t, merged.Roots, 1)
	assert.Equal(t, []string{"alpha", "zeta"}, titles(merged.Roots[0].Children))
	assert.Equal(t, []string{"1", "2"}, titles(merged.Roots[0].Children[1].Children))
}

func TestMerge_StatusOrder(t *testing.T) {
	forest := &tree.Tree{Roots: []*tree.Node{
		{Title: "healthy", Status: tree.StatusOK},
		{Title: "broken", Status: tree.StatusError},
		{Title: "iffy", Status: tree.StatusWarning},
	}}

	merged := tree.Merge(tree.ByStatusThenTitle, forest)
	assert.Equal(t, []string{"broken", "iffy", "healthy"}, titles(merged.Roots))
}

func TestMerge_EmptyAndNilInputs(t *testing.T) {
	t.Run("NoForests", func(t *testing.T) {
		merged := tree.Merge(tree.ByTitle)
		assert.True(t, merged.IsEmpty())
	})

	t.Run("NilForestSkipped", func(t *testing.T) {
		a := &tree.Tree{Roots: []*tree.Node{{Title: "A"}}}
		merged := tree.Merge(tree.ByTitle, nil, a, nil)
		assert.Equal(t, []string{"A"}, titles(merged.Roots))
	})

	t.Run("AllEmpty", func(t *testing.T) {
		merged := tree.Merge(tree.ByTitle, tree.Empty(), tree.Empty())
		assert.True(t, merged.IsEmpty())
	})
}
