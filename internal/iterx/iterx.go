// Package iterx provides the raw iter.Seq constructors shared by the
// cartprod package and its tests.
package iterx

import (
	"iter"
)

// FromSlice returns a sequence over the elements of in, in order.
//
// The returned sequence is pure: every invocation starts a fresh
// traversal from the first element.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Range returns a sequence over the half-open integer interval [start, stop).
//
// An interval with stop <= start is empty.
func Range(start, stop int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < stop; i++ {
			if !yield(i) {
				break
			}
		}
	}
}
