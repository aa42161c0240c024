// Package tree contains the implementation of an ordered container of values
// backed by a red-black tree.
//
// Values are kept in ascending order according to a comparison function given
// when the tree is created. Duplicate and nil values are rejected. Every
// insertion restores the red-black invariants, which keeps the height of the
// tree within 2*log2(n+1) regardless of the insertion order:
//
//	t := tree.NewOrdered[int]()
//	t.Insert(1)
//	t.Insert(2)
//	t.Insert(3)
//	fmt.Println(t) // [2, 1, 3]
//
// Nodes are stored in an arena and refer to each other by index, parent links
// are only used to navigate back up the tree during rebalancing.
//
// Trees are not safe to use concurrently from multiple goroutines.
package tree

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/segmentio/rbtree/compare"
)

// maxNodes is the number of values a tree can hold, bounded by the range of
// node indexes.
var maxNodes = math.MaxInt32

// Tree is a balanced binary tree containing elements of type E.
//
// The zero-value is a valid empty tree which supports lookups, but must be
// initialized prior to inserting elements.
type Tree[E any] struct {
	cmp    func(E, E) int
	nodes  []node[E]
	root   ref
	tracer func(Event)
	stats  treeStats
}

// New constructs a new tree using the comparison function passed as argument
// to order the elements, and the list of options to configure it.
func New[E any](cmp func(E, E) int, options ...Option) *Tree[E] {
	t := new(Tree[E])
	t.Init(cmp, options...)
	return t
}

// NewOrdered constructs a new tree of values ordered by the < operator.
func NewOrdered[E constraints.Ordered](options ...Option) *Tree[E] {
	return New(compare.Function[E], options...)
}

// NewWithConfig is like New but uses a Config instance to pass the tree
// configuration instead of a list of options.
func NewWithConfig[E any](cmp func(E, E) int, config *Config) *Tree[E] {
	t := new(Tree[E])
	t.init(cmp, config)
	return t
}

// Init initializes (or re-initializes) the tree with the given comparison
// function to order the elements. All values previously held in the tree are
// discarded and the statistics are reset.
func (t *Tree[E]) Init(cmp func(E, E) int, options ...Option) {
	config := DefaultConfig()
	config.Apply(options...)
	t.init(cmp, config)
}

func (t *Tree[E]) init(cmp func(E, E) int, config *Config) {
	capacity := config.Capacity
	if capacity < 0 {
		capacity = 0
	}
	if capacity >= maxNodes {
		capacity = maxNodes - 1
	}
	t.cmp = cmp
	t.nodes = make([]node[E], 1, capacity+1)
	t.nodes[nilRef].color = Black
	t.root = nilRef
	t.tracer = config.Tracer
	t.stats = treeStats{}
}

// Len returns the number of elements in the tree.
//
// Complexity: O(1)
func (t *Tree[E]) Len() int {
	if n := len(t.nodes); n > 1 {
		return n - 1
	}
	return 0
}

// Insert inserts a new element in the tree.
//
// The method returns ErrNullValue if elem is nil, and an error wrapping
// ErrDuplicateValue if an equal element already exists. ErrFull is returned
// once the tree holds math.MaxInt32 elements. The tree is not modified when an
// error is returned.
//
// The method panics if the tree had not been initialized by a call to New or
// Init.
//
// Complexity: O(log n)
func (t *Tree[E]) Insert(elem E) error {
	if t.cmp == nil {
		panic("tree: Insert called on a tree that was not initialized")
	}
	if isNil(elem) {
		t.stats.nulls++
		return ErrNullValue
	}

	parent, at := nilRef, left
	for r := t.root; r != nilRef; {
		cmp := t.cmp(elem, t.nodes[r].value)
		switch {
		case cmp < 0:
			parent, at = r, left
		case cmp > 0:
			parent, at = r, right
		default:
			t.stats.duplicates++
			return fmt.Errorf("%w: %v", ErrDuplicateValue, elem)
		}
		r = t.nodes[r].child[at]
	}
	if t.Len() >= maxNodes {
		return ErrFull
	}

	n := t.alloc(elem, parent)
	if parent == nilRef {
		t.root = n
	} else {
		t.nodes[parent].child[at] = n
	}
	t.stats.inserts++

	t.fixup(n)
	t.paint(t.root, Black)
	return nil
}

// Contains returns true if the given element exists in the tree.
//
// Complexity: O(log n)
func (t *Tree[E]) Contains(elem E) bool {
	return t.find(elem) != nilRef
}

func (t *Tree[E]) find(elem E) ref {
	if t.cmp == nil {
		return nilRef
	}
	r := t.root
	for r != nilRef {
		switch cmp := t.cmp(elem, t.nodes[r].value); {
		case cmp < 0:
			r = t.nodes[r].child[left]
		case cmp > 0:
			r = t.nodes[r].child[right]
		default:
			return r
		}
	}
	return nilRef
}

// Range calls f for each element in the tree, in the order defined by the
// comparison function. If f returns false, the iteration is stopped.
//
// Complexity: O(n)
func (t *Tree[E]) Range(f func(E) bool) {
	stack := make([]ref, 0, 2*bits.Len(uint(t.Len())))
	r := t.root
	for r != nilRef || len(stack) > 0 {
		for r != nilRef {
			stack = append(stack, r)
			r = t.nodes[r].child[left]
		}
		r = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(t.nodes[r].value) {
			return
		}
		r = t.nodes[r].child[right]
	}
}

// Values returns the elements of the tree in ascending order.
func (t *Tree[E]) Values() []E {
	values := make([]E, 0, t.Len())
	t.Range(func(elem E) bool {
		values = append(values, elem)
		return true
	})
	return values
}

// Min returns the smallest element in the tree.
//
// Complexity: O(log n)
func (t *Tree[E]) Min() (elem E, found bool) {
	return t.extreme(left)
}

// Max returns the largest element in the tree.
//
// Complexity: O(log n)
func (t *Tree[E]) Max() (elem E, found bool) {
	return t.extreme(right)
}

func (t *Tree[E]) extreme(s side) (elem E, found bool) {
	r := t.root
	if r == nilRef {
		return elem, false
	}
	for t.nodes[r].child[s] != nilRef {
		r = t.nodes[r].child[s]
	}
	return t.nodes[r].value, true
}

// Root returns the element held at the root of the tree.
func (t *Tree[E]) Root() (elem E, found bool) {
	if t.root == nilRef {
		return elem, false
	}
	return t.nodes[t.root].value, true
}

// ColorOf returns the color of the node holding elem.
func (t *Tree[E]) ColorOf(elem E) (color Color, found bool) {
	if r := t.find(elem); r != nilRef {
		return t.nodes[r].color, true
	}
	return color, false
}

// isNil reports whether v holds a nil value of a nillable kind. Values of non
// nillable kinds are never nil.
func isNil[E any](v E) bool {
	return isNilValue(reflect.ValueOf(&v).Elem())
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || isNilValue(v.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
