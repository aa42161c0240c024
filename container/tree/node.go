package tree

// Color is the color of a node in a red-black tree.
type Color uint8

const (
	// Red is the color of newly inserted nodes.
	Red Color = iota
	// Black is the color of the root and of at least one node in every pair
	// of adjacent levels.
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ref is the index of a node in the tree arena.
type ref int32

// nilRef stands for an absent node (empty root, missing child or the parent of
// the root). Slot zero of the arena is reserved and never holds a value, which
// makes the zero-value of refs, nodes and trees all empty.
const nilRef ref = 0

// side selects one of the two child slots of a node.
type side uint8

const (
	left  side = 0
	right side = 1
)

func (s side) opposite() side { return s ^ 1 }

type node[E any] struct {
	value  E
	parent ref
	child  [2]ref // indexed by side
	color  Color
}

func (t *Tree[E]) alloc(value E, parent ref) ref {
	r := ref(len(t.nodes))
	t.nodes = append(t.nodes, node[E]{
		value:  value,
		parent: parent,
		color:  Red,
	})
	return r
}

// sideOf returns the slot that r occupies in its parent. The boolean is false
// if r has no parent, or if the parent does not link back to r.
func (t *Tree[E]) sideOf(r ref) (side, bool) {
	p := t.nodes[r].parent
	if p == nilRef {
		return left, false
	}
	switch r {
	case t.nodes[p].child[left]:
		return left, true
	case t.nodes[p].child[right]:
		return right, true
	default:
		return left, false
	}
}

func (t *Tree[E]) isLeftChild(r ref) bool {
	s, ok := t.sideOf(r)
	return ok && s == left
}

// isRed reports whether r is a red node; absent nodes count as black.
func (t *Tree[E]) isRed(r ref) bool {
	return r != nilRef && t.nodes[r].color == Red
}

func (t *Tree[E]) paint(r ref, c Color) {
	if t.nodes[r].color != c {
		t.nodes[r].color = c
		t.stats.recolors++
	}
}
