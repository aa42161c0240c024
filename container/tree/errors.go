package tree

import "errors"

var (
	// ErrNullValue is returned when inserting a nil pointer, interface, map,
	// slice, function or channel in a tree.
	ErrNullValue = errors.New("tree: cannot store nil values")

	// ErrDuplicateValue is returned when inserting a value which compares
	// equal to a value already held in the tree. Errors returned by Insert
	// wrap it, use errors.Is to test for it.
	ErrDuplicateValue = errors.New("tree: value already exists")

	// ErrInvalidStructure is raised when a rotation is requested between two
	// nodes which are not parent and child. It indicates a bug in the
	// rebalancing code, and is never returned by Insert.
	ErrInvalidStructure = errors.New("tree: nodes are not parent and child")

	// ErrFull is returned when inserting in a tree which already holds as
	// many values as node indexes can address.
	ErrFull = errors.New("tree: too many values")

	// ErrNotFound is returned by Dump when the value it was given is not held
	// in the tree.
	ErrNotFound = errors.New("tree: value not found")
)
