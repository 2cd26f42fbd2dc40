package cartprod

import (
	"iter"

	"github.com/JohnScience/cart-prod/internal/iterx"
)

// A Factor is one input sequence of a Cartesian product.
//
// The wrapped iter.Seq acts as the factor's source snapshot: invoking it
// starts a fresh traversal of the same logical sequence, which is how the
// products restart a factor every time a slower-varying position advances.
// For the product cardinality and ordering guarantees to hold, every
// traversal must produce the same values in the same order.
//
// A Factor optionally carries a size hint describing how many values one
// full traversal produces. Hints are advisory: products use them only for
// SizeHint, never for correctness.
type Factor[T any] struct {
	seq     iter.Seq[T]
	lo      int
	hi      int
	hiKnown bool
}

// From wraps a sequence of unknown length into a Factor.
//
// From panics if seq is nil.
func From[T any](seq iter.Seq[T]) Factor[T] {
	if seq == nil {
		panic("cartprod.From: nil sequence")
	}
	return Factor[T]{seq: seq}
}

// FromSized wraps a sequence whose full traversal is known to produce
// exactly size values.
//
// Overstating size makes SizeHint overcount; the products themselves stay
// correct regardless.
//
// FromSized panics if seq is nil or size is negative.
func FromSized[T any](seq iter.Seq[T], size int) Factor[T] {
	if seq == nil {
		panic("cartprod.FromSized: nil sequence")
	}
	if size < 0 {
		panic("cartprod.FromSized: negative size")
	}
	return Factor[T]{seq: seq, lo: size, hi: size, hiKnown: true}
}

// FromSlice wraps the elements of values into a Factor with an exact size
// hint.
//
// The slice is not copied; mutating it between traversals breaks the
// identical-re-derivation requirement.
func FromSlice[T any](values []T) Factor[T] {
	return FromSized(iterx.FromSlice(values), len(values))
}

// Range returns a Factor over the half-open integer interval [start, stop)
// with an exact size hint. An interval with stop <= start is empty.
func Range(start, stop int) Factor[int] {
	n := stop - start
	if n < 0 {
		n = 0
	}
	return FromSized(iterx.Range(start, stop), n)
}

// SizeHint reports the declared bounds on the number of values one full
// traversal of the factor produces. hiKnown is false when no upper bound
// is known.
func (f Factor[T]) SizeHint() (lo, hi int, hiKnown bool) {
	return f.lo, f.hi, f.hiKnown
}

// pull derives a fresh live iterator from the source snapshot.
func (f Factor[T]) pull() (next func() (T, bool), stop func()) {
	return iter.Pull(f.seq)
}

func (f Factor[T]) validate(fn string) {
	if f.seq == nil {
		panic(fn + ": factor has no sequence, use From, FromSized, FromSlice or Range")
	}
}
