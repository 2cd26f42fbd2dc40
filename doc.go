/*
Package cartprod produces the Cartesian product of two or three
homogeneous sequences as a lazy stream of fixed-size arrays, without
materializing the product or buffering the inputs.

The package is built around Factors. A Factor[T] wraps an iter.Seq[T]
acting as a restartable source: invoking the sequence again replays the
same values in the same order. Products exploit this to run the classic
odometer cascade — the fastest-varying factor advances on every pull, and
a slower factor advances only once the faster one is exhausted, at which
point the faster one is re-derived from its source.

Pair yields ordered [2]T pairs, Triple ordered [3]T triples, both in
lexicographic (outer-major) order, exactly as the equivalent nested
loops would. An outer value whose nested cycle is empty contributes no
tuples and is skipped transparently. Once a product reports exhaustion it
stays exhausted.

Example of a pair product over two integer ranges:

	p := cartprod.NewPair(cartprod.Range(0, 3), cartprod.Range(0, 2))

	for pair := range p.Values() {
		fmt.Println(pair[0], pair[1])
	}
	// 0 0, 0 1, 1 0, 1 1, 2 0, 2 1

Manual pulling and remaining-size bounds are available through Next and
SizeHint:

	t := cartprod.NewTriple(
		cartprod.FromSlice(xs),
		cartprod.FromSlice(ys),
		cartprod.FromSlice(zs),
	)

	for {
		triple, ok := t.Next()
		if !ok {
			break
		}
		remaining, _, _ := t.SizeHint()
		process(triple, remaining)
	}

Factors built with From carry no size information; FromSized, FromSlice
and Range attach exact sizes, which makes the products' SizeHint exact at
every point of the iteration.

There is no error model: a factor either produces a value or ends. Sources
that can fail must surface their errors outside the product, before
wrapping or after consumption.
*/
package cartprod
