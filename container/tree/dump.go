package tree

import (
	"fmt"
	"strings"

	"github.com/segmentio/rbtree/list"
)

// String returns the elements of the tree in level order, formatted as a comma
// separated list within brackets, for example "[2, 1, 3]". An empty tree is
// formatted as "[]".
func (t *Tree[E]) String() string {
	if t.root == nilRef {
		return "[]"
	}
	return t.dump(t.root)
}

// Dump is like String but only formats the subtree rooted at the node holding
// from. The method returns ErrNotFound if from is not held in the tree.
//
// Complexity: O(n)
func (t *Tree[E]) Dump(from E) (string, error) {
	r := t.find(from)
	if r == nilRef {
		return "", fmt.Errorf("%w: %v", ErrNotFound, from)
	}
	return t.dump(r), nil
}

func (t *Tree[E]) dump(from ref) string {
	b := new(strings.Builder)
	b.WriteByte('[')

	var queue list.List[ref]
	queue.PushBack(from)

	for queue.Len() > 0 {
		r, _ := queue.RemoveFront()
		n := &t.nodes[r]
		for _, c := range n.child {
			if c != nilRef {
				queue.PushBack(c)
			}
		}
		fmt.Fprint(b, n.value)
		if queue.Len() > 0 {
			b.WriteString(", ")
		}
	}

	b.WriteByte(']')
	return b.String()
}

// Height returns the number of levels in the tree, zero when it is empty.
//
// Complexity: O(n)
func (t *Tree[E]) Height() int {
	if t.root == nilRef {
		return 0
	}

	type level struct {
		node  ref
		depth int
	}

	var queue list.List[level]
	queue.PushBack(level{node: t.root, depth: 1})
	height := 0

	for queue.Len() > 0 {
		l, _ := queue.RemoveFront()
		if l.depth > height {
			height = l.depth
		}
		for _, c := range t.nodes[l.node].child {
			if c != nilRef {
				queue.PushBack(level{node: c, depth: l.depth + 1})
			}
		}
	}

	return height
}
