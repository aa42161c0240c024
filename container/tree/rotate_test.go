package tree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfectTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree := NewOrdered[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.NoError(t, tree.Insert(v))
	}
	require.Equal(t, "[4, 2, 6, 1, 3, 5, 7]", tree.String())
	return tree
}

// checkLinks verifies that every child links back to its parent, without
// looking at colors.
func checkLinks[E any](t *testing.T, tree *Tree[E]) {
	t.Helper()
	assert.Equal(t, nilRef, tree.nodes[tree.root].parent, "root has a parent")
	for r := ref(1); int(r) < len(tree.nodes); r++ {
		for _, c := range tree.nodes[r].child {
			if c != nilRef {
				assert.Equal(t, r, tree.nodes[c].parent, "child %v of %v", tree.nodes[c].value, tree.nodes[r].value)
			}
		}
	}
}

func colorsOf[E any](tree *Tree[E]) []Color {
	colors := make([]Color, len(tree.nodes))
	for i, n := range tree.nodes {
		colors[i] = n.color
	}
	return colors
}

func TestRotateRight(t *testing.T) {
	tree := perfectTree(t)
	colors := colorsOf(tree)

	require.NoError(t, tree.rotate(tree.find(2), tree.find(4)))

	assert.Equal(t, "[2, 1, 4, 3, 6, 5, 7]", tree.String())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Values())
	assert.Equal(t, colors, colorsOf(tree))
	assert.Equal(t, int64(1), tree.Stats().Rotations)
	checkLinks(t, tree)
}

func TestRotateLeftBelowRoot(t *testing.T) {
	tree := perfectTree(t)

	require.NoError(t, tree.rotate(tree.find(2), tree.find(4)))
	require.NoError(t, tree.rotate(tree.find(6), tree.find(4)))

	assert.Equal(t, "[2, 1, 6, 4, 7, 3, 5]", tree.String())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Values())
	checkLinks(t, tree)

	s, ok := tree.sideOf(tree.find(6))
	assert.True(t, ok)
	assert.Equal(t, right, s)
	assert.True(t, tree.isLeftChild(tree.find(4)))
	assert.False(t, tree.isLeftChild(tree.root))
}

func TestRotateIsReversible(t *testing.T) {
	tree := perfectTree(t)
	nodes := slices.Clone(tree.nodes)

	require.NoError(t, tree.rotate(tree.find(6), tree.find(4)))
	require.NoError(t, tree.rotate(tree.find(4), tree.find(6)))

	assert.Equal(t, nodes, tree.nodes)
	assert.NoError(t, tree.checkInvariants())
}

func TestRotateInvalidStructure(t *testing.T) {
	tree := perfectTree(t)
	nodes := slices.Clone(tree.nodes)
	root := tree.root

	tests := []struct {
		scenario      string
		child, parent ref
	}{
		{scenario: "grandchild and grandparent", child: tree.find(1), parent: tree.find(4)},
		{scenario: "parent and child swapped", child: tree.find(4), parent: tree.find(2)},
		{scenario: "siblings", child: tree.find(2), parent: tree.find(6)},
		{scenario: "absent child", child: nilRef, parent: tree.find(4)},
		{scenario: "absent parent", child: tree.find(4), parent: nilRef},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			assert.ErrorIs(t, tree.rotate(test.child, test.parent), ErrInvalidStructure)
			assert.Equal(t, nodes, tree.nodes)
			assert.Equal(t, root, tree.root)
		})
	}

	assert.Panics(t, func() { tree.mustRotate(tree.find(1), tree.find(4)) })
	assert.Equal(t, int64(0), tree.Stats().Rotations)
}
