// Package compare contains comparison functions used to order the values held
// in trees.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
//
// Floating point NaN values are ordered before all other values and compare
// equal to each other, so that the result is a total order even when NaNs are
// present.
func Function[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return +1
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function which orders values in the opposite
// direction of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// isNaN is only ever true for floating point values.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}
