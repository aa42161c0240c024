// Package list contains the implementation of a type-safe, generic,
// doubly-linked list.
//
// The tree package uses lists as FIFO queues when walking trees in level
// order: values are pushed at the back and removed from the front, both in
// constant time.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	var queue list.List[int]
//	queue.PushBack(1)
//	queue.PushBack(2)
//
//	for queue.Len() > 0 {
//		v, _ := queue.RemoveFront()
//		...
//	}
package list

// Element is a value held in a List.
//
// Element values are owned by the list they were inserted in, programs should
// only read their Value field and use them as cursors to iterate the list.
type Element[T any] struct {
	prev  *Element[T]
	next  *Element[T]
	list  *List[T]
	Value T
}

// List values are containers of values which support insertion and removal at
// the front and back of the list, as well as removal of elements at any
// position in O(1).
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *Element[T]
	tail *Element[T]
	size int
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// Front returns the element at the front of the list, or nil if the list is
// empty.
func (list *List[T]) Front() *Element[T] { return list.head }

// Back returns the element at the back of the list, or nil if the list is
// empty.
func (list *List[T]) Back() *Element[T] { return list.tail }

// Prev returns the element right before elem in the list, or nil if elem is at
// the front.
//
// Prev can be used to iterate backward through the list:
//
//	for elem := list.Back(); elem != nil; elem = list.Prev(elem) {
//		...
//	}
func (list *List[T]) Prev(elem *Element[T]) *Element[T] {
	if elem != nil && elem.list == list {
		return elem.prev
	}
	return nil
}

// Next returns the element right after elem in the list, or nil if elem is at
// the back.
//
// Next can be used to iterate forward through the list:
//
//	for elem := list.Front(); elem != nil; elem = list.Next(elem) {
//		...
//	}
func (list *List[T]) Next(elem *Element[T]) *Element[T] {
	if elem != nil && elem.list == list {
		return elem.next
	}
	return nil
}

// PushFront inserts value at the front of the list and returns the element
// holding it.
func (list *List[T]) PushFront(value T) *Element[T] {
	elem := &Element[T]{list: list, Value: value}
	list.pushFront(elem)
	return elem
}

// PushBack inserts value at the back of the list and returns the element
// holding it.
func (list *List[T]) PushBack(value T) *Element[T] {
	elem := &Element[T]{list: list, Value: value}
	list.pushBack(elem)
	return elem
}

// RemoveFront removes the element at the front of the list and returns its
// value. The boolean is false if the list was empty.
//
// This method is a more efficient equivalent to:
//
//	list.Remove(list.Front())
func (list *List[T]) RemoveFront() (value T, ok bool) {
	if elem := list.head; elem != nil {
		list.remove(elem)
		value, ok = elem.Value, true
	}
	return value, ok
}

// RemoveBack removes the element at the back of the list and returns its
// value. The boolean is false if the list was empty.
func (list *List[T]) RemoveBack() (value T, ok bool) {
	if elem := list.tail; elem != nil {
		list.remove(elem)
		value, ok = elem.Value, true
	}
	return value, ok
}

// Remove removes elem from the list.
//
// If elem is nil or belongs to another list, the method does nothing.
func (list *List[T]) Remove(elem *Element[T]) {
	if elem != nil && elem.list == list {
		list.remove(elem)
	}
}

// RemoveAll removes all elements from the list. Elements previously returned
// by the list are detached and can no longer be used as cursors.
func (list *List[T]) RemoveAll() {
	list.reset()
}

func (list *List[T]) pushFront(elem *Element[T]) {
	if list.head == nil {
		list.tail = elem
	} else {
		elem.next = list.head
		list.head.prev = elem
	}
	list.head = elem
	list.size++
}

func (list *List[T]) pushBack(elem *Element[T]) {
	if list.tail == nil {
		list.head = elem
	} else {
		elem.prev = list.tail
		list.tail.next = elem
	}
	list.tail = elem
	list.size++
}

func (list *List[T]) remove(elem *Element[T]) {
	prev := elem.prev
	next := elem.next

	elem.prev = nil
	elem.next = nil
	elem.list = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if elem == list.head {
		list.head = next
	}

	if elem == list.tail {
		list.tail = prev
	}

	list.size--
}

func (list *List[T]) reset() {
	for elem := list.head; elem != nil; {
		next := elem.next
		elem.prev, elem.next, elem.list = nil, nil, nil
		elem = next
	}
	list.head = nil
	list.tail = nil
	list.size = 0
}
