package cartprod

import "iter"

// Pair lazily produces the two-fold Cartesian product of two homogeneous
// factors, as ordered [2]T arrays in outer-major order:
//
//	for a := range outer { for b := range inner { yield [2]T{a, b} } }
//
// The outer factor is traversed exactly once; the inner factor is
// re-derived from its source every time the outer position advances.
// No element of either factor is buffered.
//
// A Pair is single-use and not safe for concurrent use.
type Pair[T any] struct {
	outerNext func() (T, bool)
	outerStop func()
	outerCur  T

	inner     Factor[T]
	innerNext func() (T, bool)
	innerStop func()

	outer Factor[T]

	// Values pulled so far from the outer live iterator, and from the
	// inner live iterator within the current outer cycle. Only consumed
	// by SizeHint.
	outerTaken int
	innerTaken int

	primed bool
	done   bool
}

// NewPair returns the product of outer and inner. It takes ownership of
// both factors' live iterators; the Factor values themselves stay pure
// and may be reused to build further products.
//
// NewPair panics if either factor is the zero value.
func NewPair[T any](outer, inner Factor[T]) *Pair[T] {
	outer.validate("cartprod.NewPair")
	inner.validate("cartprod.NewPair")

	p := &Pair[T]{outer: outer, inner: inner}
	p.outerNext, p.outerStop = outer.pull()
	return p
}

// Next returns the next pair of the product, or ok == false once the
// product is exhausted. Exhaustion is sticky: after the first ok == false
// every later call reports ok == false without touching the factors.
func (p *Pair[T]) Next() (pair [2]T, ok bool) {
	if p.done {
		return pair, false
	}

	if p.primed {
		if v, ok := p.innerNext(); ok {
			p.innerTaken++
			return [2]T{p.outerCur, v}, true
		}
	}

	// The inner cycle for the current outer value is spent (or the product
	// is not primed yet). Advance outer, restarting inner from its source,
	// until some outer value yields a non-empty inner cycle. An outer value
	// whose inner cycle is empty contributes no pairs and is skipped.
	for {
		o, ok := p.outerNext()
		if !ok {
			p.finish()
			return pair, false
		}
		p.outerCur = o
		p.outerTaken++

		p.resetInner()
		if v, ok := p.innerNext(); ok {
			p.innerTaken = 1
			p.primed = true
			return [2]T{p.outerCur, v}, true
		}
	}
}

// Values adapts the product to an iter.Seq so it composes with
// range-over-func loops and collectors such as slices.Collect.
//
// The sequence is a view over the product's single pull state: breaking
// out of a range loop does not exhaust the product, and iteration may be
// resumed through Next or a later Values loop.
func (p *Pair[T]) Values() iter.Seq[[2]T] {
	return func(yield func([2]T) bool) {
		for {
			v, ok := p.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SizeHint reports bounds on the number of pairs Next has yet to produce.
// hiKnown is false when no upper bound is known.
//
// The lower bound never exceeds the true remaining count as long as the
// factor hints are sound. When both factors carry exact sizes the hint is
// exact at every point of the iteration.
func (p *Pair[T]) SizeHint() (lo, hi int, hiKnown bool) {
	if p.done {
		return 0, 0, true
	}

	outLo, outHi, outKnown := p.outer.SizeHint()
	innLo, innHi, innKnown := p.inner.SizeHint()

	if !p.primed {
		// No current outer value yet: the whole grid remains.
		if outKnown && innKnown {
			return mulSat(outLo, innLo), mulSat(outHi, innHi), true
		}
		return mulSat(outLo, innLo), 0, false
	}

	// Remainder of the current inner cycle, plus one full inner cycle for
	// every outer value after the current one.
	lo = addSat(remaining(innLo, p.innerTaken), mulSat(remaining(outLo, p.outerTaken), innLo))
	if outKnown && innKnown {
		hi = addSat(remaining(innHi, p.innerTaken), mulSat(remaining(outHi, p.outerTaken), innHi))
		return lo, hi, true
	}
	return lo, 0, false
}

// Stop releases the live iterators and forces the terminal state. It is
// only needed when abandoning a product before exhaustion; Next calls it
// implicitly on the factor that runs out.
//
// Stop is idempotent.
func (p *Pair[T]) Stop() {
	p.finish()
}

func (p *Pair[T]) finish() {
	if p.done {
		return
	}
	p.done = true
	p.outerStop()
	if p.innerStop != nil {
		p.innerStop()
	}
}

func (p *Pair[T]) resetInner() {
	if p.innerStop != nil {
		p.innerStop()
	}
	p.innerNext, p.innerStop = p.inner.pull()
	p.innerTaken = 0
}
