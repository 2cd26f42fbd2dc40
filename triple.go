package cartprod

import "iter"

// Triple lazily produces the three-fold Cartesian product of three
// homogeneous factors, as ordered [3]T arrays in lexicographic order
// (a slowest-varying, c fastest):
//
//	for x := range a { for y := range b { for z := range c { yield [3]T{x, y, z} } } }
//
// The a factor is traversed exactly once; b is re-derived from its source
// every time a advances, and c every time b advances. No element of any
// factor is buffered.
//
// A Triple is single-use and not safe for concurrent use.
type Triple[T any] struct {
	aNext func() (T, bool)
	aStop func()
	aCur  T

	b     Factor[T]
	bNext func() (T, bool)
	bStop func()
	bCur  T

	c     Factor[T]
	cNext func() (T, bool)
	cStop func()

	a Factor[T]

	aTaken int
	bTaken int
	cTaken int

	primed bool
	done   bool
}

// NewTriple returns the product of a, b and c. It takes ownership of the
// factors' live iterators; the Factor values themselves stay pure and may
// be reused to build further products.
//
// NewTriple panics if any factor is the zero value.
func NewTriple[T any](a, b, c Factor[T]) *Triple[T] {
	a.validate("cartprod.NewTriple")
	b.validate("cartprod.NewTriple")
	c.validate("cartprod.NewTriple")

	t := &Triple[T]{a: a, b: b, c: c}
	t.aNext, t.aStop = a.pull()
	return t
}

// Next returns the next triple of the product, or ok == false once the
// product is exhausted. Exhaustion is sticky: after the first ok == false
// every later call reports ok == false without touching the factors.
func (t *Triple[T]) Next() (triple [3]T, ok bool) {
	if t.done {
		return triple, false
	}

	if t.primed {
		if v, ok := t.cNext(); ok {
			t.cTaken++
			return [3]T{t.aCur, t.bCur, v}, true
		}
		// The c cycle is spent; move b forward under the same a value.
		if v, ok := t.advanceB(); ok {
			return [3]T{t.aCur, t.bCur, v}, true
		}
	}

	// Both nested cycles are spent (or the product is not primed yet).
	// Advance a, restarting b from its source, until some a value yields a
	// non-empty nested product. As with Pair, a values whose nested product
	// is empty contribute no triples and are skipped.
	for {
		x, ok := t.aNext()
		if !ok {
			t.finish()
			return triple, false
		}
		t.aCur = x
		t.aTaken++

		t.resetB()
		if v, ok := t.advanceB(); ok {
			t.primed = true
			return [3]T{t.aCur, t.bCur, v}, true
		}
	}
}

// advanceB advances the middle position until one of its values yields a
// non-empty c cycle, restarting c from its source at every step. It
// reports false when the current b live iterator is exhausted.
func (t *Triple[T]) advanceB() (first T, ok bool) {
	for {
		y, ok := t.bNext()
		if !ok {
			return first, false
		}
		t.bCur = y
		t.bTaken++

		t.resetC()
		if v, ok := t.cNext(); ok {
			t.cTaken = 1
			return v, true
		}
	}
}

// Values adapts the product to an iter.Seq so it composes with
// range-over-func loops and collectors such as slices.Collect.
//
// The sequence is a view over the product's single pull state: breaking
// out of a range loop does not exhaust the product, and iteration may be
// resumed through Next or a later Values loop.
func (t *Triple[T]) Values() iter.Seq[[3]T] {
	return func(yield func([3]T) bool) {
		for {
			v, ok := t.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SizeHint reports bounds on the number of triples Next has yet to
// produce. hiKnown is false when no upper bound is known.
//
// The lower bound never exceeds the true remaining count as long as the
// factor hints are sound. When all three factors carry exact sizes the
// hint is exact at every point of the iteration.
func (t *Triple[T]) SizeHint() (lo, hi int, hiKnown bool) {
	if t.done {
		return 0, 0, true
	}

	aLo, aHi, aKnown := t.a.SizeHint()
	bLo, bHi, bKnown := t.b.SizeHint()
	cLo, cHi, cKnown := t.c.SizeHint()

	allKnown := aKnown && bKnown && cKnown

	if !t.primed {
		if allKnown {
			return mulSat(mulSat(aLo, bLo), cLo), mulSat(mulSat(aHi, bHi), cHi), true
		}
		return mulSat(mulSat(aLo, bLo), cLo), 0, false
	}

	// Remainder of the current c cycle, plus one full c cycle for every
	// b value after the current one, plus one full b-by-c grid for every
	// a value after the current one.
	lo = addSat(
		remaining(cLo, t.cTaken),
		addSat(
			mulSat(remaining(bLo, t.bTaken), cLo),
			mulSat(remaining(aLo, t.aTaken), mulSat(bLo, cLo)),
		),
	)
	if allKnown {
		hi = addSat(
			remaining(cHi, t.cTaken),
			addSat(
				mulSat(remaining(bHi, t.bTaken), cHi),
				mulSat(remaining(aHi, t.aTaken), mulSat(bHi, cHi)),
			),
		)
		return lo, hi, true
	}
	return lo, 0, false
}

// Stop releases the live iterators and forces the terminal state. It is
// only needed when abandoning a product before exhaustion; Next calls it
// implicitly on the factor that runs out.
//
// Stop is idempotent.
func (t *Triple[T]) Stop() {
	t.finish()
}

func (t *Triple[T]) finish() {
	if t.done {
		return
	}
	t.done = true
	t.aStop()
	if t.bStop != nil {
		t.bStop()
	}
	if t.cStop != nil {
		t.cStop()
	}
}

func (t *Triple[T]) resetB() {
	if t.bStop != nil {
		t.bStop()
	}
	t.bNext, t.bStop = t.b.pull()
	t.bTaken = 0
}

func (t *Triple[T]) resetC() {
	if t.cStop != nil {
		t.cStop()
	}
	t.cNext, t.cStop = t.c.pull()
	t.cTaken = 0
}
