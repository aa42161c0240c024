package tree

import "fmt"

// rotate moves child up into the position of parent, and parent down as the
// child of child on the opposite side. When child is the left child of parent
// this is a right rotation, and a left rotation otherwise. The in-order
// sequence of values is preserved and colors are left untouched.
//
//	    p              c
//	   / \            / \
//	  c   z   =>     x   p
//	 / \                / \
//	x   y              y   z
//
// The method returns an error wrapping ErrInvalidStructure if child is not a
// direct child of parent, in which case the tree is not modified.
//
// Complexity: O(1)
func (t *Tree[E]) rotate(child, parent ref) error {
	if child == nilRef || parent == nilRef || t.nodes[child].parent != parent {
		return fmt.Errorf("%w: rotate(%d, %d)", ErrInvalidStructure, child, parent)
	}
	s, ok := t.sideOf(child)
	if !ok {
		return fmt.Errorf("%w: %d is not linked from %d", ErrInvalidStructure, child, parent)
	}

	grand := t.nodes[parent].parent
	if parent == t.root {
		t.root = child
	} else {
		ps, ok := t.sideOf(parent)
		if !ok {
			return fmt.Errorf("%w: %d is not linked from %d", ErrInvalidStructure, parent, grand)
		}
		t.nodes[grand].child[ps] = child
	}

	o := s.opposite()
	inner := t.nodes[child].child[o]
	t.nodes[parent].child[s] = inner
	if inner != nilRef {
		t.nodes[inner].parent = parent
	}
	t.nodes[child].child[o] = parent

	t.nodes[child].parent = grand
	t.nodes[parent].parent = child
	t.stats.rotations++
	return nil
}

func (t *Tree[E]) mustRotate(child, parent ref) {
	if err := t.rotate(child, parent); err != nil {
		panic(err)
	}
}
